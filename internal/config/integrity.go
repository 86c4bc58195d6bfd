package config

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Subresource-integrity constraints for script references.
const (
	IntegrityAlgorithm = "sha384"
	integrityDigestLen = 48

	CrossOriginAnonymous      = "anonymous"
	CrossOriginUseCredentials = "use-credentials"
)

// Integrity is a parsed subresource-integrity value.
type Integrity struct {
	Algorithm string
	Digest    []byte
}

// String renders the integrity value in its attribute form.
func (i Integrity) String() string {
	return i.Algorithm + "-" + base64.StdEncoding.EncodeToString(i.Digest)
}

// ParseIntegrity accepts "sha384-<base64>" where the payload decodes to a
// SHA-384 sized digest. Anything else is rejected.
func ParseIntegrity(s string) (Integrity, error) {
	alg, payload, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || payload == "" {
		return Integrity{}, fmt.Errorf("integrity %q is not of the form %s-<base64>", s, IntegrityAlgorithm)
	}
	if alg != IntegrityAlgorithm {
		return Integrity{}, fmt.Errorf("integrity algorithm %q is not supported (want %s)", alg, IntegrityAlgorithm)
	}
	digest, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Integrity{}, fmt.Errorf("integrity digest is not valid base64: %w", err)
	}
	if len(digest) != integrityDigestLen {
		return Integrity{}, fmt.Errorf("integrity digest has %d bytes, want %d", len(digest), integrityDigestLen)
	}
	return Integrity{Algorithm: alg, Digest: digest}, nil
}

// ValidCrossOrigin reports whether v is an accepted crossorigin attribute value.
func ValidCrossOrigin(v string) bool {
	return v == CrossOriginAnonymous || v == CrossOriginUseCredentials
}

package config

import (
	"strings"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// SchemaVersion identifies a revision of the configuration source format.
type SchemaVersion string

const (
	// SchemaV1 is the original static configuration (deprecated).
	SchemaV1 SchemaVersion = "1"
	// SchemaV2 adds the {year} copyright placeholder and css/js asset lists (deprecated).
	SchemaV2 SchemaVersion = "2"
	// SchemaV3 adds integrity-attributed script references.
	SchemaV3 SchemaVersion = "3"

	CurrentSchema = SchemaV3
)

// NormalizeSchemaVersion maps user input to a known version, or "" when unknown.
// "3.0" style suffixes are accepted.
func NormalizeSchemaVersion(raw string) SchemaVersion {
	v := strings.TrimSpace(raw)
	if v == "" {
		return CurrentSchema
	}
	v = strings.TrimSuffix(v, ".0")
	switch SchemaVersion(v) {
	case SchemaV1, SchemaV2, SchemaV3:
		return SchemaVersion(v)
	}
	return ""
}

// Deprecated reports whether the version is a historical subset of the current schema.
func (v SchemaVersion) Deprecated() bool { return v != CurrentSchema }

func (v SchemaVersion) supportsYearPlaceholder() bool { return v != SchemaV1 }
func (v SchemaVersion) supportsAssets() bool { return v != SchemaV1 }
func (v SchemaVersion) supportsIntegrity() bool { return v == SchemaV3 }

// checkSchemaFeatures rejects fields the declared version does not know about.
func checkSchemaFeatures(v SchemaVersion, cfg *BuildConfig) error {
	if !v.supportsYearPlaceholder() && strings.Contains(cfg.Copyright, YearPlaceholder) {
		return unsupportedField(v, "copyright", "year placeholder")
	}
	if !v.supportsAssets() {
		if len(cfg.CSSAssets) > 0 {
			return unsupportedField(v, "css_assets", "asset lists")
		}
		if len(cfg.JSAssets) > 0 {
			return unsupportedField(v, "js_assets", "asset lists")
		}
	}
	if !v.supportsIntegrity() {
		for _, a := range cfg.JSAssets {
			if a.HasIntegrity() {
				return unsupportedField(v, "js_assets", "integrity attributes").
					WithContext("url", a.URL)
			}
		}
	}
	return nil
}

func unsupportedField(v SchemaVersion, field, feature string) *ferrors.ClassifiedError {
	return ferrors.ConfigError(feature+" require schema version "+string(CurrentSchema)).
		WithField(field).
		WithContext("version", string(v)).
		Build()
}

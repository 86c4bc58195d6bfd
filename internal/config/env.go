package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// envFiles are read next to the configuration source, in order. A later file
// overrides keys of an earlier one.
var envFiles = []string{".env", ".env.local"}

// envRef matches ${NAME} references and the $$ escape.
var envRef = regexp.MustCompile(`\$\$|\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// readEnvFiles returns the KEY=VALUE pairs of the .env files in dir. The
// process environment is not modified, so every Load sees the files as they
// are on disk at that moment.
func readEnvFiles(dir string, logger *slog.Logger) map[string]string {
	vars := make(map[string]string)
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			logger.Warn("Failed to read environment file", logfields.Path(path), logfields.Error(err))
			continue
		}
		maps.Copy(vars, values)
		logger.Debug("Read environment file", logfields.Path(path), slog.Int("vars", len(values)))
	}
	return vars
}

// expandEnv replaces ${NAME} with the process environment value, falling back
// to fileVars. Unset names expand to the empty string. $$ yields a literal $
// and any other $ is left as written.
func expandEnv(s string, fileVars map[string]string) string {
	return envRef.ReplaceAllStringFunc(s, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := m[2 : len(m)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return fileVars[name]
	})
}

package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyConfigPath = "config_path"
	KeyField      = "field"
	KeyTheme      = "theme"
	KeyDocument   = "document"
	KeyExtension  = "extension"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyVersion    = "version"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func ConfigPath(p string) slog.Attr { return slog.String(KeyConfigPath, p) }
func Field(name string) slog.Attr { return slog.String(KeyField, name) }
func Theme(name string) slog.Attr { return slog.String(KeyTheme, name) }
func Document(name string) slog.Attr { return slog.String(KeyDocument, name) }
func Extension(name string) slog.Attr { return slog.String(KeyExtension, name) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Version(v string) slog.Attr { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

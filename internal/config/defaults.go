package config

// Defaults applied when a field is omitted.
const (
	DefaultThemeName     = "alabaster"
	DefaultPermalinkIcon = "¶"
)

// DefaultSourceSuffixes are the document suffixes recognised when none are declared.
var DefaultSourceSuffixes = []string{".rst", ".md"}

// applyDefaults fills optional fields. It runs after the required-field check
// so defaults can be derived from required values.
func applyDefaults(cfg *BuildConfig) {
	if cfg.Version == "" {
		cfg.Version = string(CurrentSchema)
	}
	if cfg.Title == "" {
		cfg.Title = cfg.Project + " documentation"
	}
	if cfg.ThemeName == "" {
		cfg.ThemeName = DefaultThemeName
	}
	if cfg.PermalinkIcon == "" {
		cfg.PermalinkIcon = DefaultPermalinkIcon
	}
	if len(cfg.SourceSuffixes) == 0 {
		cfg.SourceSuffixes = append([]string(nil), DefaultSourceSuffixes...)
	}
}

package config

// DefaultExcludes are glob patterns excluded from the preload scan by default.
var DefaultExcludes = []string{
	"**/.*",
	"**/*.tmp",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Think Kisan",
		Port:         8080,
		PostsDir:     "posts",
		PreloadDir:   "assets/gallery",
		Include:      []string{"**"},
		Exclude:      DefaultExcludes,
		MaxUploadMiB: 5,
		Theme:        ThemeDefault,
	}
}

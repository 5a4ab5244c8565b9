package config

// Theme selects which stylesheet palette the served page starts with.
type Theme string

const (
	ThemeDefault      Theme = "default"
	ThemeHighContrast Theme = "high-contrast"
)

// Config is the top-level configuration, corresponding to .gallery.yml.
type Config struct {
	Title           string   `yaml:"title" koanf:"title"`
	Port            int      `yaml:"port" koanf:"port"`
	PostsDir        string   `yaml:"posts_dir" koanf:"posts_dir"`
	PreloadDir      string   `yaml:"preload_dir" koanf:"preload_dir"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	MaxUploadMiB    int64    `yaml:"max_upload_mib" koanf:"max_upload_mib"`
	Theme           Theme    `yaml:"theme" koanf:"theme"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// MaxUploadBytes returns the upload ceiling in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMiB << 20
}

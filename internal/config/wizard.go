package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .gallery.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome! Let's configure your blog gallery.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	// 2. Posts directory.
	postsPrompt := promptui.Prompt{
		Label:   "Markdown posts directory",
		Default: cfg.PostsDir,
	}
	postsDir, err := postsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("posts dir prompt: %w", err)
	}
	cfg.PostsDir = postsDir

	// 3. Preload directory.
	preloadPrompt := promptui.Prompt{
		Label:   "Gallery preload directory",
		Default: cfg.PreloadDir,
	}
	preloadDir, err := preloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preload dir prompt: %w", err)
	}
	cfg.PreloadDir = preloadDir

	// 4. Starting theme.
	themePrompt := promptui.Select{
		Label: "Starting theme",
		Items: []string{string(ThemeDefault), string(ThemeHighContrast)},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = Theme(themeStr)

	// 5. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".gallery.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .gallery.yml")
	return cfg, nil
}

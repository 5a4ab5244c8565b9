package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thinkkisan/think-kisan-blog/internal/config"
	"github.com/thinkkisan/think-kisan-blog/internal/preload"
	"github.com/thinkkisan/think-kisan-blog/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Copy images from a directory into the preload set",
	Long: `Scans the given directory for images and copies those within the
upload size ceiling into the configured preload directory, so they appear
as preloaded gallery entries on the next serve.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		found, err := preload.Scan(preload.ScanConfig{Dir: args[0]})
		if err != nil {
			return fmt.Errorf("scanning %s: %w", args[0], err)
		}
		if len(found) == 0 {
			fmt.Println("No images found.")
			return nil
		}

		if err := os.MkdirAll(cfg.PreloadDir, 0o755); err != nil {
			return fmt.Errorf("creating preload dir: %w", err)
		}

		reporter := progress.NewReporter()
		reporter.Start(len(found))

		copied, skipped := 0, 0
		for i, p := range found {
			name := filepath.Base(p.Path)
			reporter.Update(i+1, name)

			info, err := os.Stat(p.Path)
			if err != nil || info.Size() > cfg.MaxUploadBytes() {
				skipped++
				continue
			}

			if err := copyFile(p.Path, filepath.Join(cfg.PreloadDir, name)); err != nil {
				skipped++
				continue
			}
			copied++
		}
		reporter.Finish()

		fmt.Printf("Imported %d image(s) into %s", copied, cfg.PreloadDir)
		if skipped > 0 {
			fmt.Printf(" (%d skipped)", skipped)
		}
		fmt.Println()
		return nil
	},
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func init() {
	rootCmd.AddCommand(importCmd)
}

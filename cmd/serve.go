package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thinkkisan/think-kisan-blog/internal/blog"
	"github.com/thinkkisan/think-kisan-blog/internal/config"
	"github.com/thinkkisan/think-kisan-blog/internal/gallery"
	"github.com/thinkkisan/think-kisan-blog/internal/notify"
	"github.com/thinkkisan/think-kisan-blog/internal/preload"
	"github.com/thinkkisan/think-kisan-blog/internal/server"
	"github.com/thinkkisan/think-kisan-blog/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog gallery server",
	Long:  `Loads the configuration, scans the preload directory, and serves the blog page with its gallery.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		posts, err := blog.LoadPosts(cfg.PostsDir)
		if err != nil {
			return fmt.Errorf("loading posts: %w", err)
		}

		preloads, err := preload.Scan(preload.ScanConfig{
			Dir:     cfg.PreloadDir,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		})
		if err != nil {
			return fmt.Errorf("scanning preload dir: %w", err)
		}

		hub := notify.NewHub()
		tracker := gallery.New(gallery.Options{
			Surface:        web.NewTileSurface(hub),
			Notifier:       notify.Multi(hub, notify.LogNotifier{}),
			MaxUploadBytes: cfg.MaxUploadBytes(),
		})
		tracker.Initialize(preloads)

		log.Printf("loaded %d posts, %d preloaded images", len(posts), tracker.Len())

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins})
		handler := web.NewHandler(cfg, tracker, hub, posts)
		handler.RegisterRoutes(srv.Router())

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-stop:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kisanblog",
	Short: "Self-hosted blog page with an interactive image gallery",
	Long: `kisanblog serves a markdown blog page with an embedded image
gallery: a fixed set of preloaded images plus visitor uploads, kept in
memory for the lifetime of the server and pushed live to every open page.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".gallery.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

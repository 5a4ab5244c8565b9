package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thinkkisan/think-kisan-blog/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the blog gallery and generates a .gallery.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

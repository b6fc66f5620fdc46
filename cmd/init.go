package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ravikh-dev/studykit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize studykit configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure studykit and generates a .studykit.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

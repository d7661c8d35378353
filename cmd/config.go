package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitcoach/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  `Print the active configuration and where it lives on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"path":            path,
				"command_timeout": appConfig.Git.CommandTimeout.String(),
				"default_remote":  appConfig.Git.DefaultRemote,
				"slow_threshold":  appConfig.Git.SlowThreshold.String(),
				"notifications":   appConfig.Notifications.Enabled,
				"data_dir":        appConfig.Storage.DataDir,
			})
		}

		fmt.Printf("Config file:      %s\n", path)
		fmt.Printf("Command timeout:  %s\n", time.Duration(appConfig.Git.CommandTimeout))
		fmt.Printf("Default remote:   %s\n", appConfig.Git.DefaultRemote)
		fmt.Printf("Slow threshold:   %s\n", time.Duration(appConfig.Git.SlowThreshold))
		fmt.Printf("Notifications:    %t\n", appConfig.Notifications.Enabled)
		fmt.Printf("Data directory:   %s\n", appConfig.Storage.DataDir)
		return nil
	},
}

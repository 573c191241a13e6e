package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"attachsweep/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := userSettings
		fmt.Printf("cascade           %t\n", s.EnableCascade)
		fmt.Printf("stop-folders      %q\n", s.StopFolders)
		fmt.Printf("warning           %t\n", s.EnableWarning)
		fmt.Printf("warning-threshold %d\n", s.WarningThreshold)
		fmt.Printf("trash-strategy    %s\n", s.TrashStrategy)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change one setting and persist it immediately.

Keys:
  cascade            true|false   cascade through now-empty folders
  stop-folders       names        comma-separated folder names that halt the cascade
  warning            true|false   ask before large cascades
  warning-threshold  n            folder count that triggers the confirmation
  trash-strategy     s            system-trash, local-trash, or permanent`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		s := userSettings

		switch key {
		case "cascade", "warning":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s must be true or false", key)
			}
			if key == "cascade" {
				s.EnableCascade = b
			} else {
				s.EnableWarning = b
			}
		case "stop-folders":
			s.StopFolders = value
		case "warning-threshold":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fmt.Errorf("warning-threshold must be an integer >= 1")
			}
			s.WarningThreshold = n
		case "trash-strategy":
			strategy, err := domain.ParseTrashStrategy(value)
			if err != nil {
				return err
			}
			s.TrashStrategy = strategy
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := settingsStore.Save(s); err != nil {
			return err
		}
		userSettings = s
		fmt.Printf("Set %s to %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"attachsweep/internal/adapters/filesystem"
	"attachsweep/internal/adapters/settings"
	"attachsweep/internal/adapters/sqlite"
	"attachsweep/internal/config"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

var (
	vaultPath     string
	store         ports.FileStore
	index         ports.LinkIndex
	settingsStore ports.SettingsStore
	userSettings  domain.Settings
)

var rootCmd = &cobra.Command{
	Use:   "attachsweep",
	Short: "Cascade-safe attachment deletion for markdown vaults",
	Long: `attachsweep removes an attachment from a markdown vault when you delete
the link pointing at it, and cascades the deletion upward through parent
folders the removal leaves empty.

Before anything is deleted it counts references across the whole vault
(a multiply-referenced attachment is kept), computes how far a cascade
may safely propagate, and gates large cascades behind a confirmation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		fsStore := filesystem.NewStore(vaultPath)
		store = fsStore

		idx := sqlite.NewIndex(fsStore)
		if err := idx.Open(vaultPath); err != nil {
			return fmt.Errorf("failed to open link index: %w", err)
		}
		index = idx

		settingsStore = settings.NewStore(vaultPath)
		loaded, err := settingsStore.Load()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		userSettings = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if index != nil {
			index.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

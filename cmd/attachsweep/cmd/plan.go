package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"attachsweep/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan <target>",
	Short: "Show the cascade plan for an attachment without deleting",
	Long: `Compute which ancestor folders would become empty if the attachment
were deleted, in deletion order (innermost first), and whether the
configured policy would delete them silently or ask first.

Examples:
  attachsweep plan assets/img/photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := &commands.PlanCommand{Store: store, Settings: userSettings, Target: args[0]}
		result, err := query.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(result.Folders) == 0 {
			fmt.Printf("%s: no folders would become empty\n", result.TargetPath)
			return nil
		}
		fmt.Printf("%s: %d folder(s), decision %s\n",
			result.TargetPath, len(result.Folders), result.Decision)
		for _, f := range result.Folders {
			fmt.Printf("  %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

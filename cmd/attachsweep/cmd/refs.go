package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"attachsweep/internal/application/commands"
)

var refsCmd = &cobra.Command{
	Use:   "refs <target>",
	Short: "Count references to an attachment",
	Long: `Count how many times an attachment is referenced across the vault and
list the referencing notes. The link index is re-synced first, so counts
reflect the documents as they are now.

Examples:
  attachsweep refs assets/photo.png
  attachsweep refs photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := &commands.RefsCommand{Store: store, Index: index, Target: args[0]}
		result, err := query.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d occurrence(s) in %d note(s)\n",
			result.TargetPath, result.Summary.TotalCount, result.Summary.FileCount)
		for _, f := range result.Summary.Files {
			fmt.Printf("  %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refsCmd)
}

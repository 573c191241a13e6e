package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"attachsweep/internal/adapters/editor"
	"attachsweep/internal/adapters/tui"
	"attachsweep/internal/application/commands"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

var (
	deleteAll      bool
	deleteFileOnly bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <note> <line> <ch>",
	Short: "Delete the attachment linked at a cursor position",
	Long: `Delete the attachment referenced by the link at the given cursor
position, remove the link text from the note, and cascade through parent
folders left empty, subject to the configured policy.

The note path is vault-relative; line and ch are zero-based. When the
cascade is large enough to need confirmation, an interactive prompt lists
the folders; pass --all or --file-only to answer up front.

Examples:
  attachsweep delete notes/daily.md 12 34
  attachsweep delete notes/daily.md 12 34 --file-only`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteAll && deleteFileOnly {
			return fmt.Errorf("--all and --file-only are mutually exclusive")
		}

		line, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("line must be an integer: %w", err)
		}
		ch, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("ch must be an integer: %w", err)
		}

		var confirmer ports.Confirmer = tui.NewConfirmer()
		if deleteAll {
			confirmer = &tui.StaticConfirmer{Answer: domain.ChoiceAll}
		} else if deleteFileOnly {
			confirmer = &tui.StaticConfirmer{Answer: domain.ChoiceFileOnly}
		}

		deleter := commands.NewDeleter(store, index, editor.NewEditor(vaultPath),
			tui.NewNotifier(), confirmer, userSettings)

		result, err := deleter.Execute(context.Background(), commands.DeleteRequest{
			DocPath: args[0],
			Cursor:  domain.Pos{Line: line, Ch: ch},
		})
		if err != nil {
			return err
		}

		switch result.Outcome {
		case commands.OutcomeNoLink:
			fmt.Println("No link at that cursor position.")
		case commands.OutcomeCancelled:
			fmt.Println("Cancelled.")
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete the attachment and the full cascade without asking")
	deleteCmd.Flags().BoolVar(&deleteFileOnly, "file-only", false, "delete only the attachment, keep all folders")
	rootCmd.AddCommand(deleteCmd)
}

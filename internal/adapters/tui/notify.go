package tui

import (
	"fmt"
	"io"
	"os"

	"attachsweep/internal/adapters/tui/styles"
	"attachsweep/internal/ports"
)

// Notifier implements ports.Notifier by printing a styled line to the
// terminal, standing in for the host's transient notification surface.
type Notifier struct {
	out io.Writer
}

// Ensure Notifier implements the port
var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier writing to stdout.
func NewNotifier() *Notifier {
	return &Notifier{out: os.Stdout}
}

// Notify prints the message.
func (n *Notifier) Notify(message string) {
	fmt.Fprintln(n.out, styles.SuccessMsg.Render("•")+" "+message)
}

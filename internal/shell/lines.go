package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/networkbook/networkbook/internal/commands"
	"github.com/networkbook/networkbook/internal/ui"
)

// LineOptions controls RunLines.
type LineOptions struct {
	// Prompt is written before each line is read. Empty disables it.
	Prompt string
	// Display decides width and hyperlinks for cards and help.
	Display *ui.DisplayContext
}

// RunLines reads commands from r one per line until exit or end of input,
// writing feedback to w. Rejected commands are reported and the loop goes on.
func RunLines(s *Session, r io.Reader, w io.Writer, opts LineOptions) error {
	display := opts.Display
	if display == nil {
		display = ui.NewDisplayContextWithWidth(ui.DefaultTermWidth)
	}
	cardOpts := ui.CardOptions{Hyperlinks: display.Hyperlinks}

	scanner := bufio.NewScanner(r)
	for {
		if opts.Prompt != "" {
			fmt.Fprint(w, opts.Prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := s.Run(line)
		if err != nil {
			fmt.Fprintln(w, ui.Error(err.Error()))
			continue
		}

		switch res.Action {
		case commands.ActionExit:
			fmt.Fprintln(w, res.Feedback)
			return nil
		case commands.ActionHelp:
			fmt.Fprint(w, RenderHelp(res.Topic, display.AvailableWidth(ui.MarkdownRenderMargin)))
			continue
		}

		fmt.Fprintln(w, ui.Success(res.Feedback))
		if res.SaveErr != nil {
			fmt.Fprintln(w, ui.Warningf("Could not save the network book: %v", res.SaveErr))
		}
		if ShowsList(res.Word) {
			fmt.Fprint(w, ui.RenderList(s.Model().FilteredPersonList(), cardOpts))
		}
	}
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/networkbook/networkbook/internal/ui"
)

// canConfirm reports whether a yes/no question can be asked: both ends must
// be a terminal and output must not be JSON.
func canConfirm() bool {
	if isJSONOutput() {
		return false
	}
	return ui.IsTerminal(os.Stdout.Fd()) && stdinIsTerminal()
}

// confirm asks question on w and reads one answer line from r. Only "y" and
// "yes" agree; anything else, including EOF, declines.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s %s ", question, ui.Hint("[y/N]"))
	answer, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// console bundles the line-based terminal plumbing shared by the storefront
// and admin sessions. Everything held here is render-local draft state; only
// validated values ever reach the stores.
type console struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func newConsole(in io.Reader, out io.Writer, logger *zap.Logger) console {
	return console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

func (c console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// prompt prints a label and reads one trimmed line. The second return is
// false when input is exhausted.
func (c console) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// openLink hands a deep link to the system browser. Fire-and-forget: a
// failure is logged and the link stays printed for manual use.
func (c console) openLink(link string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}

	if err := cmd.Start(); err != nil {
		c.logger.Warn("could not open link in browser", zap.Error(err))
	}
}

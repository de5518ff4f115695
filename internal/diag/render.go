package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorEnabled mirrors the NO_COLOR + isatty.IsTerminal/IsCygwinTerminal
// detection the teacher's builtins_term.go uses for its own terminal
// color support, applied here to stderr instead of stdout.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
)

func paint(s, code string) string {
	if !colorEnabled() {
		return s
	}
	return code + s + ansiReset
}

// Render formats an Error for a terminal: the primary span, the
// cyclic-reference secondary span when present, the call stack, and a
// did-you-mean suggestion.
func Render(err *Error) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s\n", paint(string(err.Kind), ansiBold+ansiRed), err.Message)
	if !err.Location.IsZero() {
		fmt.Fprintf(&sb, "  %s %s\n", paint("at", ansiDim), err.Location)
	}

	if err.Secondary != nil {
		label := err.PrimaryLabel
		if label == "" {
			label = "first reference"
		}
		secLabel := err.SecondaryLabel
		if secLabel == "" {
			secLabel = "cycle closes here"
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", paint("-", ansiDim), label, err.Location)
		fmt.Fprintf(&sb, "  %s %s %s\n", paint("-", ansiDim), secLabel, *err.Secondary)
	}

	if err.Suggestion != "" {
		fmt.Fprintf(&sb, "  %s %s\n", paint("did you mean", ansiCyan), err.Suggestion)
	}

	if len(err.StackTrace) > 0 {
		fmt.Fprintln(&sb, paint("  call stack:", ansiDim))
		for i := len(err.StackTrace) - 1; i >= 0; i-- {
			f := err.StackTrace[i]
			name := f.FuncName
			if name == "" {
				name = "<anonymous>"
			}
			kind := ""
			if f.IsNative {
				kind = " (native)"
			}
			fmt.Fprintf(&sb, "    %s%s at %s\n", name, kind, f.Location)
		}
	}

	return sb.String()
}

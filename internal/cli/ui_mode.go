package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live quiz UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode determines whether the quiz runs in the live UI. Live mode
// needs both ends of the session on a terminal.
func resolveUIMode(mode string, verbose bool, stdout io.Writer, in io.Reader) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto", "live", "plain":
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if verbose || normalized == "plain" {
		return uiModeDecision{useLive: false}, nil
	}
	interactive := isTerminal(stdout) && isTerminal(in)
	if normalized == "live" && !interactive {
		return uiModeDecision{
			useLive: false,
			warning: "Live UI requested but the session is not a TTY; falling back to plain prompts.",
		}, nil
	}
	return uiModeDecision{useLive: interactive}, nil
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

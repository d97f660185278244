package display

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yuriiter/bikeshare/pkg/config"
)

// ANSI codes. Empty when colors are disabled, so concatenation is a no-op.
var (
	Cyan = ""
	NC   = ""
)

// Configure resolves the color mode against out and sets the ANSI variables.
func Configure(mode config.ColorMode, out *os.File) {
	if enabled(mode, out) {
		Cyan, NC = "\033[1;96m", "\033[0m"
		return
	}
	Cyan, NC = "", ""
}

func enabled(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return out != nil && term.IsTerminal(int(out.Fd())) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Writer copies text to the system clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// Noop is a Writer that discards everything. Used in tests and in
// headless deployments with no clipboard available.
type Noop struct{}

// Write implements Writer as a no-op.
func (Noop) Write(context.Context, string) error { return nil }

// NewNoop creates a no-op clipboard writer.
func NewNoop() Writer {
	return Noop{}
}

// System writes to the host clipboard by piping through the platform's
// clipboard utility.
type System struct{}

// NewSystem creates a clipboard writer for the current platform.
func NewSystem() Writer {
	return System{}
}

// Write implements Writer.
func (System) Write(ctx context.Context, text string) error {
	name, args := clipboardCommand()
	if name == "" {
		return fmt.Errorf("no clipboard utility available on %s", runtime.GOOS)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// clipboardCommand picks the clipboard utility for the platform.
// On Linux, Wayland's wl-copy is preferred over X11's xclip.
func clipboardCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return "wl-copy", nil
		}
		if _, err := exec.LookPath("xclip"); err == nil {
			return "xclip", []string{"-selection", "clipboard"}
		}
		return "", nil
	default:
		return "", nil
	}
}

// Package opener hands files and URLs to the desktop's default handler.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Command returns the command that opens target on goos, or nil when the
// platform has no known opener.
func Command(goos, target string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return nil
	}
}

// Open starts the platform opener for target without waiting for it
func Open(target string) error {
	cmd := Command(runtime.GOOS, target)
	if cmd == nil {
		return fmt.Errorf("no opener for %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	// reap in the background so the opener does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}

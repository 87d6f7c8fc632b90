// Package clipboard is the clipboard-write collaborator. It tries OSC 52
// escape sequences first (works over SSH and in modern terminals) and
// falls back to the native OS clipboard.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if err := copyOSC52(text); err == nil {
		return nil
	}
	return clipboard.WriteAll(text)
}

// copyOSC52 writes the OSC 52 clipboard escape sequence directly to the
// controlling terminal so it reaches the terminal even when stdout is
// owned by the TUI renderer.
func copyOSC52(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	seq := fmt.Sprintf("\033]52;c;%s\a", encoded)

	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer tty.Close()

	_, err = fmt.Fprint(tty, seq)
	return err
}

// Package prompt implements interactive confirmations on the controlling
// terminal.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalConfirmer asks yes/no questions on stdin/stderr. Without an
// interactive terminal it refuses rather than guessing an answer.
type TerminalConfirmer struct{}

func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{}
}

func (c *TerminalConfirmer) ConfirmOverwrite(path string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("no interactive terminal to confirm overwriting %s, use --force", path)
	}

	fmt.Fprintf(os.Stderr, "%s already exists. Overwrite? [y/N]: ", path)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/coldforge/frame/internal/config"
	"github.com/coldforge/frame/internal/ui"
)

const editorPlaceholder = "\nReplace this content with your message.\nThere is no limit on the length of messages\n"

// composeMessage resolves the text for a push/payload-replace/append
// operation: an explicit flag value wins, then a named template, then an
// editor session, then (with no editor available, or stdout not a
// terminal) a terminated-by-a-lone-dot stdin read. Grounded on frame.c's run_editor.
func composeMessage(flagMessage, templateBody string) (string, error) {
	if flagMessage != "" {
		return flagMessage, nil
	}
	if templateBody != "" {
		return templateBody, nil
	}

	editor := config.ResolveEditor("")
	if editor == "" {
		for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(candidate); err == nil {
				editor = candidate
				break
			}
		}
	}

	if editor == "" || !ui.IsTerminal() {
		return readMessageFromStdin()
	}
	return runEditor(editor)
}

func readMessageFromStdin() (string, error) {
	fmt.Println("Enter the message, ending with a single period on a line by itself")
	var b strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "." {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading message from stdin: %w", err)
	}
	return b.String(), nil
}

func runEditor(editor string) (string, error) {
	tmp, err := os.CreateTemp("", "frame-tmpfile-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(editorPlaceholder); err != nil {
		tmp.Close()
		return "", fmt.Errorf("seeding temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	parts := strings.Fields(editor)
	args := append(parts[1:], tmpPath)
	cmd := exec.Command(parts[0], args...) //nolint:gosec // editor from trusted $EDITOR/$VISUAL/config
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	fmt.Printf("Waiting for [%s] to return\n", editor)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor aborted: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("reading editor output: %w", err)
	}
	return string(data), nil
}

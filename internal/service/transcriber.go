package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileTranscriber reads an already-transcribed capture from disk. A source of
// "-" reads from stdin instead, which lets the CLI be piped into.
type FileTranscriber struct {
	Stdin io.Reader
}

// Transcribe returns the trimmed contents of the source file.
func (t *FileTranscriber) Transcribe(_ context.Context, source string) (string, error) {
	if source == "-" {
		in := t.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read transcript from stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// StaticTranscriber returns a fixed transcript regardless of source. It
// stands in for the real speech-to-text layer in tests and demos.
type StaticTranscriber struct {
	Text string
}

// Transcribe returns the configured text.
func (t *StaticTranscriber) Transcribe(_ context.Context, _ string) (string, error) {
	return t.Text, nil
}

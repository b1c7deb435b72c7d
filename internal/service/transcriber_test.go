package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTranscriber_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("  I spent 50 dirhams on groceries \n"), 0o600))

	transcriber := &FileTranscriber{}
	text, err := transcriber.Transcribe(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "I spent 50 dirhams on groceries", text)
}

func TestFileTranscriber_ReadsStdin(t *testing.T) {
	transcriber := &FileTranscriber{Stdin: strings.NewReader("paid 10 euros\n")}

	text, err := transcriber.Transcribe(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "paid 10 euros", text)
}

func TestFileTranscriber_MissingFile(t *testing.T) {
	transcriber := &FileTranscriber{}

	_, err := transcriber.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestStaticTranscriber(t *testing.T) {
	transcriber := &StaticTranscriber{Text: "bought lunch"}

	text, err := transcriber.Transcribe(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "bought lunch", text)
}

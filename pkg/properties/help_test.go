package properties

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineFormatterWrapsWords(t *testing.T) {
	got := NewLineFormatter("aaa bbb ccc", "\n", 7)
	assert.Equal(t, "aaa \nbbb \nccc", got)
}

func TestNewLineFormatterShortTextUnchanged(t *testing.T) {
	assert.Equal(t, "hello world", NewLineFormatter("hello world", "\n", 100))
}

func TestNewLineFormatterKeepsLongWords(t *testing.T) {
	got := NewLineFormatter("supercalifragilistic", "\n", 5)
	assert.Equal(t, "supercalifragilistic", got)
}

func TestHelpTextListsProperties(t *testing.T) {
	s := newTestService(t, portID)
	text := s.HelpText()

	assert.Contains(t, text, "usage: props-test")
	assert.Contains(t, text, "-p|--port <PORT>")
	assert.Contains(t, text, "[Default: 8080]")
	assert.Contains(t, text, "-h|--help")
	assert.Contains(t, text, "-v|--verbose")
}

func TestHelpTextSortedByKey(t *testing.T) {
	s := newTestService(t, portID)
	text := s.HelpText()

	help := strings.Index(text, "where:")
	logLevel := strings.Index(text[help:], "--log-level")
	port := strings.Index(text[help:], "--port")
	verbose := strings.Index(text[help:], "--verbose")

	assert.True(t, logLevel < port, "log-level should precede port")
	assert.True(t, port < verbose, "port should precede verbose")
}

func TestHelpTextSurvivesBrokenProperty(t *testing.T) {
	s := newTestService(t, rejectAllID)
	text := s.HelpText()

	assert.Contains(t, text, "--reject-all")
}

func TestPrintHelpWritesToOutput(t *testing.T) {
	var out strings.Builder
	s := newTestService(t, portID)
	s.out = &out

	require.NoError(t, s.PrintHelp())
	assert.Contains(t, out.String(), "usage: props-test")
}

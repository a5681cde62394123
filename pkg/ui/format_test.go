package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"auto", FormatAuto, false},
		{"", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"TEXT", FormatText, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDetectFormatNonTerminal(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.Equal(t, FormatText, DetectFormat(file))
}

func TestRenderMarkdownPlain(t *testing.T) {
	content := "# Usage\n\nsome text"
	assert.Equal(t, content, RenderMarkdown(content, FormatText))
}

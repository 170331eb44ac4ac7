package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and lists",
			input:    "Printer **stuck**\n\n- tray 1\n- tray 2",
			contains: []string{"<strong>stuck</strong>", "<li>tray 1</li>"},
		},
		{
			name:     "hard wraps",
			input:    "line one\nline two",
			contains: []string{"<br"},
		},
		{
			name:     "script stripped",
			input:    "hello <script>alert(1)</script>",
			excludes: []string{"<script>", "alert(1)</script>"},
		},
		{
			name:     "javascript link stripped",
			input:    "[click](javascript:alert(1))",
			excludes: []string{"javascript:"},
		},
		{
			name:     "external links get nofollow",
			input:    "see https://example.com/status",
			contains: []string{"nofollow", `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(got), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, string(got), s)
			}
		})
	}
}

func TestRenderer_Empty(t *testing.T) {
	got, err := NewRenderer().Render("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

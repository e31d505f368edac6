package display_test

import (
	"testing"

	"github.com/azlands/daoscan/pkg/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  display.Format
	}{
		{"", display.FormatAuto},
		{"auto", display.FormatAuto},
		{"term", display.FormatTerminal},
		{"terminal", display.FormatTerminal},
		{"text", display.FormatText},
		{"plain", display.FormatText},
		{"JSON", display.FormatJSON},
	}

	for _, tt := range tests {
		t.Run("parse_"+tt.input, func(t *testing.T) {
			got, err := display.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := display.ParseFormat("sgml")
		assert.Error(t, err)
	})
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", display.FormatAuto.String())
	assert.Equal(t, "term", display.FormatTerminal.String())
	assert.Equal(t, "text", display.FormatText.String())
	assert.Equal(t, "json", display.FormatJSON.String())
}

func TestGetStyle(t *testing.T) {
	// Known names come from the embedded styles.yaml; unknown names
	// must still return a usable zero style.
	assert.NotPanics(t, func() {
		_ = display.GetStyle("Error").Render("boom")
		_ = display.GetStyle("NoSuchStyle").Render("ok")
	})
}

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter_Plain(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter().Format(componentDoc(t), &buf))
	out := buf.String()

	assert.Contains(t, out, "IKPA 2026")
	assert.Contains(t, out, "Komponen (3 baris)")
	assert.Contains(t, out, "Revisi DIPA ⓘ")
	assert.NotContains(t, out, "950,50")
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	var header string
	for _, l := range lines {
		if strings.HasPrefix(l, "  No") {
			header = l
		}
	}
	require.NotEmpty(t, header)
	assert.Less(t, strings.Index(header, "Uraian Satker"), strings.Index(header, "Kode Satker"))
}

func TestTextFormatter_ZebraColour(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter().Format(componentDoc(t), &buf))
	out := buf.String()
	assert.Contains(t, out, "48;2;255;255;255")
	assert.Contains(t, out, "48;2;242;242;242")
}

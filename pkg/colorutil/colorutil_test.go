package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#F5F5DC")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xF5, G: 0xF5, B: 0xDC, A: 255}, c)

	c, err = ParseHex("4169e180")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x41, G: 0x69, B: 0xE1, A: 0x80}, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#GGGGGG")
	assert.Error(t, err)
}

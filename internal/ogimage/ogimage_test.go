package ogimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGDimensions(t *testing.T) {
	r := NewRenderer(Card{
		Title:    "Northern Forge AI",
		Subtitle: "Forging Accessible AI for Tomorrow's Businesses",
		Footer:   "northern-forge.com",
	})

	data, err := r.PNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestPNGIsCached(t *testing.T) {
	r := NewRenderer(Card{Title: "x"})

	a, err := r.PNG()
	require.NoError(t, err)
	b, err := r.PNG()
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0])
}

func TestDrawTextTruncates(t *testing.T) {
	long := string(bytes.Repeat([]byte("A"), 500))
	img := Draw(Card{Title: long})
	assert.Equal(t, Width, img.Bounds().Dx())
}

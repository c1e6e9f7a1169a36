package imageproc

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestResize_ScalesDownPreservingAspect(t *testing.T) {
	p := NewProcessor(85)

	data, format, err := p.Resize(bytes.NewReader(encodeJPEG(t, 800, 400)), SizeThumbnail)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestResize_PortraitBoundsHeight(t *testing.T) {
	p := NewProcessor(85)

	data, _, err := p.Resize(bytes.NewReader(encodeJPEG(t, 500, 1000)), SizeThumbnail)
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestResize_SmallImageKeptAsIs(t *testing.T) {
	p := NewProcessor(85)

	data, _, err := p.Resize(bytes.NewReader(encodeJPEG(t, 100, 80)), SizeThumbnail)
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestResize_PNGKeepsFormat(t *testing.T) {
	p := NewProcessor(85)

	data, format, err := p.Resize(bytes.NewReader(encodePNG(t, 600, 600)), SizeThumbnail)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	_, decoded, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", decoded)
}

func TestResize_RejectsGarbage(t *testing.T) {
	p := NewProcessor(85)

	_, _, err := p.Resize(bytes.NewReader([]byte("not an image")), SizeThumbnail)
	require.Error(t, err)
}

func TestNewProcessor_QualityClamped(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(101).quality)
	assert.Equal(t, 70, NewProcessor(70).quality)
}

package qr

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLink(t *testing.T) {
	g := NewGenerator("https://asistencias.municipio.gob.ar", "https://quickchart.io", 300)

	link := g.ScanLink("ABC-123", "Obras Públicas")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/scan", parsed.Path)
	assert.Equal(t, "ABC-123", parsed.Query().Get("token"))
	assert.Equal(t, "Obras Públicas", parsed.Query().Get("area"))
}

func TestImageURL(t *testing.T) {
	g := NewGenerator("https://asistencias.municipio.gob.ar", "https://quickchart.io", 300)

	link := g.ScanLink("ABC-123", "")
	imageURL := g.ImageURL(link)

	assert.True(t, strings.HasPrefix(imageURL, "https://quickchart.io/qr?text="))
	assert.Contains(t, imageURL, "size=300")
	// The link must be URL-encoded inside the text parameter.
	assert.NotContains(t, imageURL[len("https://quickchart.io/qr?text="):], "https://asistencias")
}

func TestRenderPNG(t *testing.T) {
	g := NewGenerator("https://asistencias.municipio.gob.ar", "https://quickchart.io", 0)

	png, err := g.RenderPNG(g.ScanLink("ABC-123", "Obras"))
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

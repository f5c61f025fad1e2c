// Package qr builds scan links and their QR representations. The frontend
// embeds the QuickChart image URL directly; the PNG renderer backs the
// printable version so kiosks work even if the external service is down.
package qr

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 300

type Generator struct {
	frontendURL   string
	quickChartURL string
	size          int
}

func NewGenerator(frontendURL, quickChartURL string, size int) *Generator {
	if size <= 0 {
		size = defaultSize
	}
	return &Generator{
		frontendURL:   frontendURL,
		quickChartURL: quickChartURL,
		size:          size,
	}
}

// ScanLink returns the public scan URL for a token:
// <frontend>/scan?token=<value>&area=<name>
func (g *Generator) ScanLink(token, area string) string {
	v := url.Values{}
	v.Set("token", token)
	v.Set("area", area)
	return fmt.Sprintf("%s/scan?%s", g.frontendURL, v.Encode())
}

// ImageURL returns the external QR rendering endpoint for a scan link.
func (g *Generator) ImageURL(link string) string {
	return fmt.Sprintf("%s/qr?text=%s&size=%d&margin=1&dark=1e293b&light=ffffff",
		g.quickChartURL, url.QueryEscape(link), g.size)
}

// RenderPNG encodes the scan link as a PNG locally.
func (g *Generator) RenderPNG(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR: %w", err)
	}
	return png, nil
}

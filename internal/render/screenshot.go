// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"geniewp/internal/models"
)

// PathScreenshot is the preview image the CMS shows in its theme browser.
const PathScreenshot = "screenshot.png"

// Screenshot dimensions follow the 4:3 size the CMS recommends.
const (
	ScreenshotWidth  = 1200
	ScreenshotHeight = 900
)

const (
	headerHeight = 120
	heroBottom   = 520
	footerTop    = 820
	cardTop      = 580
	cardBottom   = 760
	cardGap      = 40
	padding      = 60
	maxLabelLen  = 36
)

// Screenshot draws a wireframe preview of the front page in the theme's
// palette: header with the site name, hero with the tagline, three
// service cards and the footer band.
func Screenshot(td models.ThemeData) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, ScreenshotWidth, ScreenshotHeight))

	fill(img, img.Bounds(), paletteColor(td, "white", color.RGBA{255, 255, 255, 255}))
	fill(img, image.Rect(0, 0, ScreenshotWidth, headerHeight), paletteColor(td, "primary", color.RGBA{37, 99, 235, 255}))
	fill(img, image.Rect(0, headerHeight, ScreenshotWidth, heroBottom), paletteColor(td, "secondary", color.RGBA{16, 185, 129, 255}))
	fill(img, image.Rect(0, footerTop, ScreenshotWidth, ScreenshotHeight), paletteColor(td, "dark-gray", color.RGBA{31, 41, 55, 255}))

	cardWidth := (ScreenshotWidth - 2*padding - 2*cardGap) / 3
	card := paletteColor(td, "light-gray", color.RGBA{243, 244, 246, 255})
	accent := paletteColor(td, "accent", color.RGBA{245, 158, 11, 255})
	for i := range 3 {
		x := padding + i*(cardWidth+cardGap)
		fill(img, image.Rect(x, cardTop, x+cardWidth, cardBottom), card)
		fill(img, image.Rect(x, cardTop, x+cardWidth, cardTop+8), accent)
	}

	white := color.RGBA{255, 255, 255, 255}
	name := label(td.SiteName)
	stamp(img, text(name, white), image.Pt(padding, (headerHeight-13*3)/2), 3)

	if tagline := label(td.Tagline); tagline != "" {
		t := text(tagline, white)
		scale := 4
		if t.Bounds().Dx()*scale > ScreenshotWidth-2*padding {
			scale = 2
		}
		x := (ScreenshotWidth - t.Bounds().Dx()*scale) / 2
		y := headerHeight + (heroBottom-headerHeight-t.Bounds().Dy()*scale)/2
		stamp(img, t, image.Pt(x, y), scale)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// text renders s in the built-in bitmap face at its native 7x13 size.
func text(s string, c color.Color) *image.RGBA {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face, Src: image.NewUniform(c)}
	w := d.MeasureString(s).Ceil()
	if w == 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, face.Height))
	d.Dst = img
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)
	return img
}

// stamp scales src by an integer factor onto dst at pt.
func stamp(dst draw.Image, src *image.RGBA, pt image.Point, scale int) {
	b := src.Bounds()
	r := image.Rect(pt.X, pt.Y, pt.X+b.Dx()*scale, pt.Y+b.Dy()*scale)
	draw.NearestNeighbor.Scale(dst, r, src, b, draw.Over, nil)
}

// label keeps the text short enough to fit the preview.
func label(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > maxLabelLen {
		return strings.TrimSpace(string(r[:maxLabelLen-3])) + "..."
	}
	return s
}

func paletteColor(td models.ThemeData, slug string, fallback color.RGBA) color.RGBA {
	if c, ok := parseHex(td.ColorBySlug(slug)); ok {
		return c
	}
	return fallback
}

// parseHex reads #rgb or #rrggbb.
func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
}

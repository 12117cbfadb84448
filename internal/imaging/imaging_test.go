// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestThumbnailScalesDown(t *testing.T) {
	src := encodePNG(t, 800, 600)

	out, err := Thumbnail(src, 400)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	if out == nil {
		t.Fatal("Thumbnail returned nil for a large image")
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 400 {
		t.Errorf("width = %d, want 400", cfg.Width)
	}
	if cfg.Height != 300 {
		t.Errorf("height = %d, want 300 (aspect preserved)", cfg.Height)
	}
}

func TestThumbnailSkipsSmallImages(t *testing.T) {
	src := encodePNG(t, 200, 150)

	out, err := Thumbnail(src, 400)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	if out != nil {
		t.Error("Thumbnail produced output for an already-small image")
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail(bytes.NewReader([]byte("not an image")), 400); err == nil {
		t.Error("Thumbnail accepted non-image data")
	}
}

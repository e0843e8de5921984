package codec

import (
	"testing"

	"github.com/larkspur-oss/imgio/pkg/stream"
)

func TestOpenRejectsWrongMagic(t *testing.T) {
	junk := []byte("this is not any recognized image container format")

	if _, err := OpenJPEG(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenJPEG accepted non-JPEG data")
	}
	if _, err := OpenWebP(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenWebP accepted non-WebP data")
	}
	if _, err := OpenBMP(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenBMP accepted non-BMP data")
	}
	if _, err := OpenGIF(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenGIF accepted non-GIF data")
	}
	if _, err := OpenPSD(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenPSD accepted non-PSD data")
	}
	if _, err := OpenHDR(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenHDR accepted non-Radiance data")
	}
	if _, err := OpenEXR(stream.NewMemoryReader(junk)); err == nil {
		t.Error("OpenEXR accepted non-EXR data")
	}
}

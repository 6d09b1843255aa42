package libio_test

import (
	"bytes"
	"testing"

	"garden-gl/libio"
)

func TestTextureCacheRoundTrip(t *testing.T) {
	tex := &libio.TextureData{
		Width:  16,
		Height: 8,
		Pix:    make([]byte, 16*8*4),
	}
	for i := range tex.Pix {
		tex.Pix[i] = byte(i * 31)
	}

	buf := &bytes.Buffer{}
	if err := libio.EncodeTexture(buf, tex); err != nil {
		t.Fatal(err)
	}

	decoded, err := libio.DecodeTexture(buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Width != tex.Width || decoded.Height != tex.Height {
		t.Fatalf("dimensions incorrect, should be %dx%d but are %dx%d", tex.Width, tex.Height, decoded.Width, decoded.Height)
	}
	if !bytes.Equal(decoded.Pix, tex.Pix) {
		t.Errorf("pixel payload did not survive the round trip")
	}
}

func TestDecodeRejectsCorruptHeader(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := libio.DecodeTexture(bytes.NewReader(data)); err == nil {
		t.Fatal("corrupt header should not decode")
	}
}

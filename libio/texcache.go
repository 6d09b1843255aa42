// Package libio implements the decoded-texture cache format: a small binary
// header followed by the lz4-compressed RGBA pixel payload. Caching the
// decoded pixels sidesteps the jpeg/png decode on every startup.
package libio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// "GTX" + format version
const magicNumberTex = 0x47545801

// TextureData is a decoded RGBA image ready for upload.
type TextureData struct {
	Width  int
	Height int
	// RGBA, 4 bytes per pixel, rows bottom-up as uploaded
	Pix []byte
}

type textureHeader struct {
	Check  uint32
	Width  uint32
	Height uint32
}

func EncodeTexture(w io.Writer, tex *TextureData) (err error) {
	bw := &BinaryWriter{
		Dst:   w,
		Order: binary.LittleEndian,
	}

	header := textureHeader{
		Check:  magicNumberTex,
		Width:  uint32(tex.Width),
		Height: uint32(tex.Height),
	}
	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write tex header: %w", bw.Err)
	}

	lzw := lz4.NewWriter(bw)
	lzw.Apply(lz4.CompressionLevelOption(lz4.Fast))
	if _, err = lzw.Write(tex.Pix); err != nil {
		return fmt.Errorf("could not compress tex payload: %w", err)
	}
	if err = lzw.Close(); err != nil {
		return fmt.Errorf("could not finish tex payload: %w", err)
	}
	return bw.Err
}

func DecodeTexture(r io.Reader) (tex *TextureData, err error) {
	br := &BinaryReader{
		Src:   r,
		Order: binary.LittleEndian,
	}

	header := textureHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected tex header: %w", br.Err)
	}
	if header.Check != magicNumberTex {
		return nil, fmt.Errorf("tex header is corrupt; byte 0x%08x", br.LastIndex)
	}

	pix := make([]byte, int(header.Width)*int(header.Height)*4)
	lzr := lz4.NewReader(br.Src)
	if _, err = io.ReadFull(lzr, pix); err != nil {
		return nil, fmt.Errorf("could not read tex payload: %w", err)
	}

	return &TextureData{
		Width:  int(header.Width),
		Height: int(header.Height),
		Pix:    pix,
	}, nil
}

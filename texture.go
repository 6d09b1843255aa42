package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"garden-gl/libio"

	"github.com/go-gl/gl/v4.5-core/gl"
	xdraw "golang.org/x/image/draw"
)

// LoadSceneTexture reads an image file, converts it to power-of-two RGBA and
// uploads it with mipmaps. Decoded pixels are cached next to the source file
// so later startups skip the image decode.
func LoadSceneTexture(path string) (uint32, error) {
	tex, err := loadTextureData(path)
	if err != nil {
		return 0, fmt.Errorf("could not load texture %v: %w", path, err)
	}
	return uploadTexture(tex), nil
}

func loadTextureData(path string) (*libio.TextureData, error) {
	cachePath := strings.TrimSuffix(path, filepath.Ext(path)) + ".tex"
	if f, err := os.Open(cachePath); err == nil {
		tex, err := libio.DecodeTexture(f)
		f.Close()
		if err == nil {
			return tex, nil
		}
		log.Printf("discarding unreadable texture cache %v: %v\n", cachePath, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	tex := convertTexture(img)
	writeTextureCache(cachePath, tex)
	return tex, nil
}

// convertTexture resamples to power-of-two dimensions and flips the rows so
// that v grows upward, matching the GL texture coordinate convention.
func convertTexture(img image.Image) *libio.TextureData {
	bounds := img.Bounds()
	width := nextPow2(bounds.Dx())
	height := nextPow2(bounds.Dy())

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, bounds, xdraw.Src, nil)

	pix := make([]byte, width*height*4)
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		copy(pix[(height-1-y)*rowLen:], src)
	}

	return &libio.TextureData{
		Width:  width,
		Height: height,
		Pix:    pix,
	}
}

// writeTextureCache is best effort, a failed cache write only costs the next
// startup a decode.
func writeTextureCache(path string, tex *libio.TextureData) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("could not create texture cache %v: %v\n", path, err)
		return
	}
	defer f.Close()
	if err := libio.EncodeTexture(f, tex); err != nil {
		log.Printf("could not write texture cache %v: %v\n", path, err)
		os.Remove(path)
	}
}

func uploadTexture(tex *libio.TextureData) uint32 {
	var id uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &id)

	max := math.Max(float64(tex.Width), float64(tex.Height))
	levels := int32(math.Log2(max))
	if levels == 0 {
		levels = 1
	}
	gl.TextureStorage2D(id, levels, gl.RGBA8, int32(tex.Width), int32(tex.Height))
	gl.TextureSubImage2D(id, 0, 0, 0, int32(tex.Width), int32(tex.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pix))
	gl.GenerateTextureMipmap(id)

	gl.TextureParameteri(id, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TextureParameteri(id, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TextureParameteri(id, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TextureParameteri(id, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return id
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

package glhelper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	// The demo textures are 24-bit BMP files; register that decoder too.
	_ "golang.org/x/image/bmp"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTexture reads an image file, uploads it as an RGB8 2D texture with a
// full mipmap chain, REPEAT wrapping and LINEAR filtering, and returns the
// texture handle. Textures loaded this way live for the rest of the
// process; the viewer never frees them.
//
// The image rows are uploaded top-to-bottom while OpenGL samples textures
// bottom-up. The mesh texture coordinates are authored with that convention
// in mind, so no flip happens here.
func LoadTexture(path string) (uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// OpenGL expects tightly interleaved RGB bytes; the decoded image may
	// carry any color model, so convert pixel by pixel.
	pixels := make([]uint8, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	// Wrapping per axis (s:x, t:y) and interpolation behavior.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows are tightly packed 3-byte pixels, not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height),
		0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return textureID, nil
}

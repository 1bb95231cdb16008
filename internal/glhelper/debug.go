package glhelper

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CheckError drains the OpenGL error queue, logging each error with the
// given tag. Residual driver errors are logged but not fatal; under valid
// preconditions the frame loop never produces one. The 3.2 core context has
// no debug message callback, so polling is the only option.
func CheckError(tag string) {
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		log.Printf("GL error 0x%04x after %s", code, tag)
	}
}

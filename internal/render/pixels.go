package render

import (
	"image/color"

	"grid-ca/pkg/grid"
)

// fillBinaryRGBA rasterizes a cell grid into RGBA pixels, one pixel
// per cell in iteration order: on for any non-zero cell, off for
// zero. The buffer must hold 4 bytes per cell.
func fillBinaryRGBA(buf []byte, g grid.Grid[uint8], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for _, c := range g.All() {
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
		} else {
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
		base += 4
	}
}

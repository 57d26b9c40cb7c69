package render

import "image/color"

// fillCellsRGBA writes one RGBA pixel per cell into buf, which must hold
// 4*len(cells) bytes. Non-zero cells get alive, zero cells get dead.
func fillCellsRGBA(buf []byte, cells []uint8, alive, dead color.RGBA) {
	on := [4]byte{alive.R, alive.G, alive.B, alive.A}
	off := [4]byte{dead.R, dead.G, dead.B, dead.A}
	for i, c := range cells {
		px := buf[i*4 : i*4+4 : i*4+4]
		if c != 0 {
			copy(px, on[:])
		} else {
			copy(px, off[:])
		}
	}
}

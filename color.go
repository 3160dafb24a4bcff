package tuix

import "strconv"

// RGB is a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// Hex returns an RGB color from a hex value (e.g. 0xFF5500).
func Hex(hex uint32) RGB {
	return RGB{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// blendShadow derives a shadow color by blending the background toward
// the foreground at a fixed 0.3 intensity, truncating per channel.
func blendShadow(bg, fg RGB) RGB {
	const intensity = 0.3
	blend := func(b, f uint8) uint8 {
		return uint8(float64(b)*(1-intensity) + float64(f)*intensity)
	}
	return RGB{
		R: blend(bg.R, fg.R),
		G: blend(bg.G, fg.G),
		B: blend(bg.B, fg.B),
	}
}

// appendFg appends the 24-bit foreground escape sequence (ESC[38;2;r;g;bm).
func appendFg(b []byte, c RGB) []byte {
	b = append(b, "\x1b[38;2;"...)
	return appendRGB(b, c)
}

// appendBg appends the 24-bit background escape sequence (ESC[48;2;r;g;bm).
func appendBg(b []byte, c RGB) []byte {
	b = append(b, "\x1b[48;2;"...)
	return appendRGB(b, c)
}

func appendRGB(b []byte, c RGB) []byte {
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	return append(b, 'm')
}

// ansiReset clears all active styling.
const ansiReset = "\x1b[0m"

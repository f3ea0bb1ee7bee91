package qrterm

import (
	"bufio"
	"fmt"
	"io"

	"rsc.io/qr"
)

// quietZone is the border of light modules around the code, in modules.
const quietZone = 2

// Renderer draws QR codes as half-block characters, two modules per
// terminal row.
type Renderer struct {
	// Level is the error correction level, qr.L by default.
	Level qr.Level
}

// Render encodes data and writes the terminal representation to w.
func (r Renderer) Render(data []byte, w io.Writer) error {
	code, err := qr.Encode(string(data), r.Level)
	if err != nil {
		return fmt.Errorf("failed to encode QR code: %w", err)
	}

	black := func(x, y int) bool {
		x -= quietZone
		y -= quietZone
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return false
		}
		return code.Black(x, y)
	}

	buf := bufio.NewWriter(w)
	size := code.Size + 2*quietZone
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			upper := black(x, y)
			lower := y+1 < size && black(x, y+1)
			switch {
			case upper && lower:
				buf.WriteRune('█')
			case upper:
				buf.WriteRune('▀')
			case lower:
				buf.WriteRune('▄')
			default:
				buf.WriteRune(' ')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Flush()
}

package canvas

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ppmLineLength is the column limit for PPM pixel data; rows longer
// than this wrap without splitting a value.
const ppmLineLength = 70

// ToPPM encodes the canvas as a plain-text PPM (P3) string: a 3-line
// header, one canvas row per line wrapped at 70 columns, and a
// trailing newline.
func (c *Canvas) ToPPM() string {
	var ppm strings.Builder
	fmt.Fprintf(&ppm, "P3\n%d %d\n255\n", c.width, c.height)

	values := make([]int, 0, len(c.pixels)*3)
	for _, pixel := range c.pixels {
		scaled := pixel.Multiply(255)
		values = append(values,
			clampInt(int(math.Round(scaled.R)), 0, 255),
			clampInt(int(math.Round(scaled.G)), 0, 255),
			clampInt(int(math.Round(scaled.B)), 0, 255),
		)
	}

	var line strings.Builder
	for i, value := range values {
		s := strconv.Itoa(value)
		if line.Len()+1+len(s) >= ppmLineLength {
			ppm.WriteString(line.String())
			ppm.WriteByte('\n')
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(s)
		if (i+1)%(c.width*3) == 0 {
			ppm.WriteString(line.String())
			ppm.WriteByte('\n')
			line.Reset()
		}
	}
	ppm.WriteString(line.String())
	ppm.WriteByte('\n')
	return ppm.String()
}

// WritePPM writes the PPM encoding of the canvas to w.
func (c *Canvas) WritePPM(w io.Writer) error {
	_, err := io.WriteString(w, c.ToPPM())
	return err
}

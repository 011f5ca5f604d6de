package exposure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BT.709 relative luminance weights.
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// ErrMalformedPixel is returned for tokens that are not three comma-separated integers.
var ErrMalformedPixel = errors.New("malformed pixel")

// Pixel holds the channel values of one input token.
//
// Channels are conceptually 0-255 but are not validated; only the resulting
// luminance is range-checked when it is added to a Histogram.
type Pixel struct {
	B int
	G int
	R int
}

// ParsePixel parses a "B,G,R" token.
//
// Each field is a base-10 integer and may carry a sign. Any other field count
// or a non-integer field yields an error wrapping ErrMalformedPixel.
func ParsePixel(token string) (Pixel, error) {
	fields := strings.Split(token, ",")
	if len(fields) != 3 {
		return Pixel{}, fmt.Errorf("%w %q: want 3 fields, got %d", ErrMalformedPixel, token, len(fields))
	}

	var ch [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Pixel{}, fmt.Errorf("%w %q: %v", ErrMalformedPixel, token, err)
		}
		ch[i] = v
	}

	return Pixel{B: ch[0], G: ch[1], R: ch[2]}, nil
}

// String formats the pixel back into its "B,G,R" token form.
func (p Pixel) String() string {
	return strconv.Itoa(p.B) + "," + strconv.Itoa(p.G) + "," + strconv.Itoa(p.R)
}

// Luminance returns the rounded BT.709 luminance of p.
//
// For channels in [0, 255] the result is in [0, 255].
func Luminance(p Pixel) int {
	// Explicit conversions stop the compiler from fusing multiply and add.
	y := float64(weightRed*float64(p.R)) +
		float64(weightGreen*float64(p.G)) +
		float64(weightBlue*float64(p.B))
	return roundLuminance(y)
}

func roundLuminance(y float64) int {
	return int(math.RoundToEven(y))
}

// Package exposure classifies an image as "day" or "night" from its luminance
// distribution.
//
// Pixels arrive as text tokens of the form "B,G,R" (blue, green, red, in that
// order). Each pixel is reduced to a single integer luminance in [0, 255] using
// the ITU-R BT.709 relative luminance weights:
//
//	luminance = round(0.2126*R + 0.7152*G + 0.0722*B)
//
// and counted in a fixed 256-bucket Histogram.
//
// # Rounding
//
// Ties are rounded half to even (math.RoundToEven), so 34.5 becomes 34 and
// 11.5 becomes 12. Each weighted product is rounded to float64 before the sum is
// taken, which keeps the result identical on platforms that would otherwise fuse
// the multiply and add.
//
// # Classification
//
// The median bucket index is found by scanning buckets upward from 0, adding
// each bucket's count to a running total and advancing the index in the same
// step, until the running total reaches half of all pixels. An index below
// 256/3 classifies as Night; anything else is Day. An empty histogram has a
// median index of 0 and is therefore Night.
//
// # Thread Safety
//
// Histogram is not safe for concurrent use. It is meant to be filled by a single
// reader and then classified once.
package exposure

// Package lineart converts grayscale images into "line art" for pen plotters.
//
// Instead of filling shaded regions, six shades are approximated by
// horizontal and vertical strokes whose spacing encodes darkness.  The
// conversion has three steps:
//
//   - a [Quantizer] reduces every pixel to one of six shades,
//   - a [Tracer] scans the rows and then the columns of the resulting
//     [Grid], finding runs of equal shade,
//   - the [Horizontal] and [Vertical] policies decide which runs become
//     strokes, depending on the shade and the index of the scan line.
//
// Strokes are delivered as [Segment] values to a [Sink], in the order in
// which a plotter should draw them.
package lineart

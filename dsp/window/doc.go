// Package window provides window-function coefficient generation and a
// strict-length window processor.
//
// [Generate] returns symmetric window coefficients for a [Type]. A [Window]
// wraps a coefficient vector of fixed size and scales sample buffers in
// place; unlike the filter runtimes, its Process requires the buffer length
// to match the window size exactly, since a window has no notion of partial
// application.
package window

// Package geom provides the window-space rectangle and point types used for
// click hit testing.
//
// Coordinates are float64 because pointer events arrive with sub-pixel
// precision. Rectangles are edge based (Left, Top, Right, Bottom) to match the
// bounds reported by UI toolkits.
package geom

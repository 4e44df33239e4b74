/*
Package mandelbrot implements the escape-time membership test for the
Mandelbrot set, mapped over the pixels of a square raster.

Pixel (x, y) of a size-by-size image maps to the complex point
c = (2x/size - 1.5) + (2y/size - 1)i, covering the plane region
[-1.5, 0.5] x [-1, 1]. A point belongs to the set if the orbit of zero
under z = z*z + c stays within magnitude 2 for MaxIterations steps.
*/
package mandelbrot

// MaxIterations bounds the escape-time loop for every point.
const MaxIterations = 50

// Point maps pixel (x, y) of a size-by-size image to its complex point.
func Point(x, y, size int) complex128 {
	return complex(
		2*float64(x)/float64(size)-1.5,
		2*float64(y)/float64(size)-1.0,
	)
}

// InSet reports whether c belongs to the Mandelbrot set, that is whether the
// orbit of zero under z*z + c stays below magnitude 2 for MaxIterations
// steps. The magnitude test compares squares so no square root is needed.
func InSet(c complex128) bool {
	var z complex128
	for i := 0; i < MaxIterations; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) >= 4 {
			return false
		}
	}
	return true
}

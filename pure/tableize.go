// Package pure holds the side-effect free computations behind lightness tables.
//
// Everything here is a pure function of its arguments: the same inputs always
// yield the same outputs, on every host. That property is what allows a whole
// table to be computed once, at build time, and baked into a program image.
package pure

// Tabulate evaluates pureFn over the indices 0..n-1, in order, and returns the results.
//
// pureFn must not depend on anything but its argument. Tabulate panics if n is negative.
func Tabulate[O any](n int, pureFn func(int) O) []O {
	if n < 0 {
		panic("n should not be negative")
	}
	table := make([]O, n)
	for i := range table {
		table[i] = pureFn(i)
	}
	return table
}

// TabulateUpTo evaluates pureFn over the inclusive domain 0..last.
func TabulateUpTo[O any](last uint, pureFn func(uint) O) []O {
	return Tabulate(int(last)+1, func(i int) O {
		return pureFn(uint(i))
	})
}

// Package benchtest is used for benchmarking utfcase against the Go stdlib's
// bytes and unicode/utf8 packages.
//
// It is not part of the utfcase package since the stdlib functions use full
// Unicode case mapping and validate their input, so the results are a measure
// of the overhead of utfcase rather than a comparison of equivalent code.
package benchtest

// Package euclid computes the greatest common divisor of two integers.
//
// GCD follows the classic remainder-reduction form of the Euclidean
// algorithm: operands are reduced to absolute values, ordered so the larger
// comes first, then replaced by (b, a mod b) until the remainder is zero.
//
// A zero operand is not special-cased. After ordering it becomes the divisor
// and the computation reports ErrZeroDivisor, the same way the modulo
// operation itself would fail.
package euclid

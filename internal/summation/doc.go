// Package summation parses a line of numbers and sums the parsed prefix.
//
// A line is split on Unicode whitespace into tokens. Tokens are parsed in
// order as float64 values; the first token that does not parse ends the
// sequence, and it and every token after it are discarded. The sum and the
// count cover only the parsed prefix.
package summation

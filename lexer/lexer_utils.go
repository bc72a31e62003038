/*
File: go-mix/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import "strconv"

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c may start an identifier: a letter or
// underscore.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlphaNumeric reports whether c may continue an identifier once
// started.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// parseFloat converts a scanned NUMBER lexeme into its float64 value. The
// lexer only ever hands this a string matching \d+(\.\d+)?, so the parse
// cannot fail.
func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}

// Package phase parses free-form phase expressions into radians.
//
// Accepted forms, tried in order:
//
//	r:1.57     explicit radians
//	d:90       explicit degrees
//	90deg      degrees, anything after the first "deg" is ignored
//	90d        degrees with a single trailing d or D
//	3.14/2     quotient of two numbers
//	1.57       plain radians
//
// Numbers are scanned the way C's sscanf("%lf") does: leading whitespace is
// skipped and the longest numeric prefix is used, so "90 deg", "1.5 x" and
// hex floats such as 0x1p3 are accepted. "1.5rad" ends in d and therefore
// reads as 1.5 degrees. Parse never invents a value; callers decide on a
// fallback when it returns an error.
package phase

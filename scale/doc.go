// Package scale provides exact rational scale factors.
//
// A Factor states how many standard units one unit is worth: a kilometer is
// 1000/1 meters, a kilometer per hour is 5/18 meters per second. Factors are
// always kept reduced (gcd(num, den) = 1, den > 0) so that equal factors
// compare equal with == and growth under composition stays bounded.
//
// Composition that would overflow int64 is reported as ErrOverflow rather
// than wrapping silently.
package scale

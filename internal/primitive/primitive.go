// Package primitive contains some primitives and helper functions.
package primitive

// IfTrue returns second argument if the condition is true, otherwise, returns the third one.
// Same as C's ternary condition operator:
//
//	cond ? t : f;
func IfTrue[T any](cond bool, t T, f T) T {
	if cond {
		return t
	}
	return f
}

// ValueOr returns the value p points to, or def if p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

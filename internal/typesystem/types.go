// Package typesystem holds the five primitive types of spec.md §4.3 plus
// the `unknown` sentinel used to suppress cascading diagnostics once an
// error has already been reported for an expression.
package typesystem

// Type is one of the five surface types, or Unknown.
type Type string

const (
	Int     Type = "int"
	Float   Type = "float"
	Bool    Type = "bool"
	String  Type = "string"
	Void    Type = "void"
	Unknown Type = "unknown"
)

// IsNumeric reports whether t participates in arithmetic per spec.md §4.3.
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// Widens reports whether a value of type from may be used where a value of
// type to is expected, per the widening rule of spec.md §4.3 and §9
// (int -> float at assignment, initialization, argument passing, return).
// Equal types always widen to themselves; Unknown widens to anything so it
// never produces a second cascading diagnostic.
func Widens(from, to Type) bool {
	if from == Unknown || to == Unknown {
		return true
	}
	if from == to {
		return true
	}
	return from == Int && to == Float
}

// ResultOf returns the result type of a binary arithmetic operation,
// per spec.md §4.3: int if both operands are int, else float. Callers
// must first confirm both operands are numeric.
func ResultOf(a, b Type) Type {
	if a == Int && b == Int {
		return Int
	}
	return Float
}

package codegen

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
var labelPattern = regexp.MustCompile(`^L[0-9]+$`)
var registerPattern = regexp.MustCompile(`^r[1-6]$`)

func isNumericOperand(s string) bool { return numberPattern.MatchString(s) }
func isLabelOperand(s string) bool   { return labelPattern.MatchString(s) }
func isRegisterOperand(s string) bool { return registerPattern.MatchString(s) }

// registerAllocator lazily assigns one of 6 virtual registers to every
// distinct operand that needs one, per spec.md §4.6: stride
// `r((n mod 6) + 1)`. There is no real liveness analysis or spilling —
// this is an illustrative, non-linkable code generator, not a production
// allocator — so registers are happily reused across unrelated values once
// the counter wraps.
type registerAllocator struct {
	assigned map[string]string
	next     int
}

func newRegisterAllocator() *registerAllocator {
	return &registerAllocator{assigned: map[string]string{}}
}

func (r *registerAllocator) regFor(operand string) string {
	if reg, ok := r.assigned[operand]; ok {
		return reg
	}
	reg := "r" + strconv.Itoa((r.next%6)+1)
	r.next++
	r.assigned[operand] = reg
	return reg
}

// variableTracker records, in first-seen order, every operand that needs a
// `.data` slot: anything that isn't a numeric literal, a label, or an
// already-assigned register.
type variableTracker struct {
	seen  map[string]bool
	order []string
}

func newVariableTracker() *variableTracker {
	return &variableTracker{seen: map[string]bool{}}
}

func (v *variableTracker) observe(operand string) {
	if operand == "" || isNumericOperand(operand) || isLabelOperand(operand) || isRegisterOperand(operand) {
		return
	}
	if v.seen[operand] {
		return
	}
	v.seen[operand] = true
	v.order = append(v.order, operand)
}

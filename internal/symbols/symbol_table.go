// Package symbols implements the scope chain and symbol table of spec.md
// §3/§4.3. spec.md describes scopes as string-keyed records with string
// parent pointers, implying a global map; per spec.md §9 "Symbol-table
// scopes" this is reworked here as an arena of scope records indexed by
// integer ids, with parent links as indices and an incrementing counter
// for block scope names instead of a random suffix, so scope creation is
// deterministic (spec.md §8 invariant 1).
package symbols

import (
	"fmt"

	"github.com/iamZamil/minic/internal/typesystem"
)

// Kind is the declaration kind of a Symbol.
type Kind int

const (
	Variable Kind = iota
	Function
	Parameter
)

// Param is a single declared function parameter, name and type only.
type Param struct {
	Name string
	Type typesystem.Type
}

// Symbol is a declared name: a variable, parameter, or function.
type Symbol struct {
	Name        string
	Type        typesystem.Type
	Kind        Kind
	Line        int
	Column      int
	Initialized bool
	Params      []Param         // function symbols only
	ReturnType  typesystem.Type // function symbols only
}

// scopeID is the arena index of a Scope; -1 denotes "no parent".
type scopeID int

const noParent scopeID = -1

// scope is one node of the scope forest, per spec.md §3 Scope invariants:
// (a) shadowing across nested scopes is allowed, (b) redeclaration within
// one scope is not, (c) Parent chains to the root "global" scope.
type scope struct {
	name    string
	parent  scopeID
	symbols map[string]Symbol
	// order preserves declaration order, for deterministic iteration
	// (e.g. fuzzy "did you mean" suggestions must scan in a stable order).
	order []string
}

// SymbolTable is the arena-backed scope forest plus the single "current
// scope" cursor the analyzer mutates as it walks the AST.
type SymbolTable struct {
	scopes       []scope
	current      scopeID
	global       scopeID
	blockCounter int
}

// NewSymbolTable builds a table with a single, empty global scope as its
// current scope, matching spec.md §4.3.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{}
	st.global = st.pushScope("global", noParent)
	st.current = st.global
	return st
}

func (st *SymbolTable) pushScope(name string, parent scopeID) scopeID {
	st.scopes = append(st.scopes, scope{name: name, parent: parent, symbols: map[string]Symbol{}})
	return scopeID(len(st.scopes) - 1)
}

// CurrentScopeName returns the string id of the scope the analyzer is
// currently in, e.g. "global", "function_main", "block_0".
func (st *SymbolTable) CurrentScopeName() string {
	return st.scopes[st.current].name
}

// AtGlobal reports whether the cursor has returned to "global"; spec.md
// §8 invariant 5 requires this to hold once analysis completes.
func (st *SymbolTable) AtGlobal() bool {
	return st.current == st.global
}

// EnterFunction creates scope "function_<name>" as a child of global and
// makes it current, per spec.md §4.3.
func (st *SymbolTable) EnterFunction(name string) {
	st.current = st.pushScope("function_"+name, st.global)
}

// EnterBlock creates a uniquely-named child of the current scope and makes
// it current. The name uses an incrementing counter rather than a random
// suffix, per spec.md §9.
func (st *SymbolTable) EnterBlock() {
	name := fmt.Sprintf("block_%d", st.blockCounter)
	st.blockCounter++
	st.current = st.pushScope(name, st.current)
}

// Exit restores the parent of the current scope as current. Calling Exit
// at the global scope is a no-op, guarding against unbalanced Enter/Exit
// pairs in malformed ASTs produced by parser error recovery.
func (st *SymbolTable) Exit() {
	if st.current == st.global {
		return
	}
	st.current = st.scopes[st.current].parent
}

// Declare adds sym to the current scope. ok is false if name is already
// declared in this scope (redeclaration, spec.md §4.3); in that case the
// prior symbol is returned unchanged and the new one is not inserted.
func (st *SymbolTable) Declare(sym Symbol) (prior Symbol, ok bool) {
	sc := &st.scopes[st.current]
	if existing, found := sc.symbols[sym.Name]; found {
		return existing, false
	}
	sc.symbols[sym.Name] = sym
	sc.order = append(sc.order, sym.Name)
	return Symbol{}, true
}

// Update overwrites an already-declared symbol in the scope that owns it
// (used to flip Initialized after an initializer/assignment is checked).
func (st *SymbolTable) Update(sym Symbol) {
	id := st.current
	for id != noParent {
		if _, ok := st.scopes[id].symbols[sym.Name]; ok {
			st.scopes[id].symbols[sym.Name] = sym
			return
		}
		id = st.scopes[id].parent
	}
}

// Resolve walks from the current scope up through parents to global,
// looking for name, per spec.md §4.3 name resolution.
func (st *SymbolTable) Resolve(name string) (Symbol, bool) {
	id := st.current
	for id != noParent {
		if sym, ok := st.scopes[id].symbols[name]; ok {
			return sym, true
		}
		id = st.scopes[id].parent
	}
	return Symbol{}, false
}

// EnclosingFunction walks the scope chain upward from the current scope to
// find the nearest "function_<name>" scope's Symbol, for checking `return`
// against the declared return type (spec.md §4.3).
func (st *SymbolTable) EnclosingFunction() (Symbol, bool) {
	id := st.current
	for id != noParent {
		name := st.scopes[id].name
		if len(name) > len("function_") && name[:len("function_")] == "function_" {
			fnName := name[len("function_"):]
			if sym, ok := st.scopes[st.global].symbols[fnName]; ok && sym.Kind == Function {
				return sym, true
			}
		}
		id = st.scopes[id].parent
	}
	return Symbol{}, false
}

// GlobalSymbol looks up name directly in the global scope, used for the
// "program must have a main function" check (spec.md §4.3).
func (st *SymbolTable) GlobalSymbol(name string) (Symbol, bool) {
	sym, ok := st.scopes[st.global].symbols[name]
	return sym, ok
}

// NamesInScope returns every name visible from the current scope (own
// scope first, then ancestors), in declaration order, for "did you mean"
// suggestions.
func (st *SymbolTable) NamesInScope() []string {
	var names []string
	id := st.current
	for id != noParent {
		names = append(names, st.scopes[id].order...)
		id = st.scopes[id].parent
	}
	return names
}

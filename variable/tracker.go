// Package variable implements the Variable Tracker (spec.md §4.3, C3):
// a static offset→assignment map, registered before Reset, and a
// dynamic name→current-value map refreshed during stepping.
//
// Grounded on core/state/state_object.go + journal.go's shape (a
// dirty-tracking map keyed by identity, refreshed as execution
// proceeds) with the journal's revert machinery dropped — the spec
// calls for forward-only tracking, never rollback.
package variable

import "github.com/probeum/neovm-debugger/stackitem"

// Assignment is a static, source-mapped offset→name binding,
// registered before Reset (spec.md §4.3).
type Assignment struct {
	Name         string
	DeclaredType stackitem.Kind
}

// Value is a variable's current value and type.
type Value struct {
	Item stackitem.Item
	Type stackitem.Kind
}

// StackPeeker is the minimal capability the tracker needs from the VM
// to seed or update a variable: peek n items deep on the evaluation
// stack.
type StackPeeker interface {
	Peek(n int) (stackitem.Item, bool)
}

// Tracker holds one session's assignments and variables.
type Tracker struct {
	assignments map[uint32]Assignment
	variables   map[string]Value
	// priorTypes remembers the last known type for each variable name
	// across Reset calls within this Tracker's lifetime, so that
	// "Unknown" DeclaredTypes can inherit a previously observed type
	// (spec.md §4.3). The inheritance only helps within a single
	// Tracker's lifetime: a fresh Tracker (fresh session) starts with
	// nothing to inherit, exactly as spec.md §9's open question notes.
	priorTypes map[string]stackitem.Kind
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		assignments: make(map[uint32]Assignment),
		variables:   make(map[string]Value),
		priorTypes:  make(map[string]stackitem.Kind),
	}
}

// RegisterAssignment records a static offset→name binding, ahead of
// Reset (spec.md §4.3).
func (t *Tracker) RegisterAssignment(offset uint32, name string, declaredType stackitem.Kind) {
	t.assignments[offset] = Assignment{Name: name, DeclaredType: declaredType}
}

// ClearAssignments empties both maps (spec.md §4.3).
func (t *Tracker) ClearAssignments() {
	t.assignments = make(map[uint32]Assignment)
	t.variables = make(map[string]Value)
}

// AssignmentAt looks up the static assignment registered at offset, if
// any.
func (t *Tracker) AssignmentAt(offset uint32) (Assignment, bool) {
	a, ok := t.assignments[offset]
	return a, ok
}

// SeedEntryPointVariables peeks the evaluation stack at depth i for
// each of the ABI entry-point's inputs (in order) and records its
// current value, immediately after Reset (spec.md §4.3). It stops
// silently on the first peek failure — short argument lists are
// tolerated, per spec.md §4.3. This clears variables from any prior
// session before seeding, but not priorTypes: the whole point of
// priorTypes is to survive across variables being cleared.
func (t *Tracker) SeedEntryPointVariables(stack StackPeeker, inputs []Assignment) {
	t.variables = make(map[string]Value)
	for i, in := range inputs {
		item, ok := stack.Peek(i)
		if !ok {
			return
		}
		t.record(in.Name, item, in.DeclaredType)
	}
}

// UpdateAtOffset is called after a successful StepInto when the new
// instruction pointer lands on a registered assignment offset
// (spec.md §4.3, §4.5 step 2): it peeks top-of-stack and records the
// assignment's value. Peek failures are swallowed.
func (t *Tracker) UpdateAtOffset(offset uint32, stack StackPeeker) {
	a, ok := t.assignments[offset]
	if !ok {
		return
	}
	item, ok := stack.Peek(0)
	if !ok {
		return
	}
	t.record(a.Name, item, a.DeclaredType)
}

// record stores a variable's current value, resolving an Unknown
// declared type to the last known type for that name, if any.
func (t *Tracker) record(name string, item stackitem.Item, declaredType stackitem.Kind) {
	typ := declaredType
	if typ == stackitem.KindUnknown {
		if prior, ok := t.priorTypes[name]; ok {
			typ = prior
		}
	}
	t.variables[name] = Value{Item: item, Type: typ}
	t.priorTypes[name] = typ
}

// GetVariable returns the named variable's current value, if tracked.
func (t *Tracker) GetVariable(name string) (Value, bool) {
	v, ok := t.variables[name]
	return v, ok
}

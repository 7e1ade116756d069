// Package guard binds a release action to a block scope.
//
// A guard couples the result of a begin call with the end call that balances
// it. Callers construct the guard and immediately defer End, so release runs
// on every exit path from the enclosing block, including panics:
//
//	g := guard.NewBool[guard.WhenOpen](b.BeginCombo("x", "", 0), b.EndCombo)
//	defer g.End()
//	if g.Active() {
//		// region body
//	}
//
// End runs at most once per guard. Nested guards release in reverse order of
// construction because deferred calls run LIFO.
package guard

// EndFunc is a zero-argument release action: the End*/Pop* counterpart of the
// call that constructed the guard. It must not panic and must not be nil.
type EndFunc func()

// Policy selects the release discipline of a boolean guard at the type level.
type Policy interface {
	alwaysEnd() bool
}

// Always releases regardless of the captured state. For begin calls whose
// result only signals visibility while the stack still requires a matching
// end (windows, child regions).
type Always struct{}

func (Always) alwaysEnd() bool { return true }

// WhenOpen releases only when the captured state is true. For begin calls
// that push nothing when they return false (combos, popups, menus, trees).
type WhenOpen struct{}

func (WhenOpen) alwaysEnd() bool { return false }

// Bool guards a begin call that returns a bool. The state is captured at
// construction and never changes.
type Bool[P Policy] struct {
	state bool
	end   EndFunc
	done  bool
}

// NewBool captures the result of an already-executed begin call together with
// its release action.
func NewBool[P Policy](state bool, end EndFunc) Bool[P] {
	return Bool[P]{state: state, end: end}
}

// Active reports the captured begin state. The guarded body must run only
// when Active returns true.
func (g Bool[P]) Active() bool {
	return g.state
}

// End releases according to the policy: unconditionally for Always, only on a
// true state for WhenOpen. Calls after the first are no-ops.
func (g *Bool[P]) End() {
	if g.done {
		return
	}
	g.done = true
	var p P
	if p.alwaysEnd() || g.state {
		g.end()
	}
}

// Void guards a begin call with no result. It is always active and always
// releases.
type Void struct {
	end  EndFunc
	done bool
}

// NewVoid0 invokes begin and binds end for release.
//
// The NewVoid constructors exist per arity because Go has no variadic type
// parameters; the catalogue needs arities zero through three.
func NewVoid0(begin func(), end EndFunc) Void {
	begin()
	return Void{end: end}
}

// NewVoid1 invokes begin with one argument and binds end for release.
func NewVoid1[A any](begin func(A), end EndFunc, a A) Void {
	begin(a)
	return Void{end: end}
}

// NewVoid2 invokes begin with two arguments and binds end for release.
func NewVoid2[A, B any](begin func(A, B), end EndFunc, a A, b B) Void {
	begin(a, b)
	return Void{end: end}
}

// NewVoid3 invokes begin with three arguments and binds end for release.
func NewVoid3[A, B, C any](begin func(A, B, C), end EndFunc, a A, b B, c C) Void {
	begin(a, b, c)
	return Void{end: end}
}

// Active always reports true, letting void guards share the boolean guard's
// conditional-body idiom.
func (g Void) Active() bool {
	return true
}

// End releases unconditionally. Calls after the first are no-ops.
func (g *Void) End() {
	if g.done {
		return
	}
	g.done = true
	g.end()
}

package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/vdelcros/vma/dispatch"
)

// Script errors.
var (
	// ErrNoAdmitFunction indicates the chunk does not define admit().
	ErrNoAdmitFunction = errors.New("script: chunk does not define an admit function")

	// ErrRuleClosed indicates the rule's Lua state has been closed.
	ErrRuleClosed = errors.New("script: rule is closed")
)

// Rule runs a Lua predicate as an extra admission rule.
type Rule struct {
	mu sync.Mutex

	name   string
	state  *lua.LState
	fn     lua.LValue
	closed bool
}

// Rule satisfies the dispatcher's rule contract.
var _ dispatch.Rule = (*Rule)(nil)

// NewRule compiles source and binds its admit function. The caller owns
// the rule and must Close it when done.
func NewRule(name, source string) (*Rule, error) {
	L := lua.NewState()
	sandbox(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: loading rule %s: %w", name, err)
	}

	fn := L.GetGlobal("admit")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("%w: rule %s", ErrNoAdmitFunction, name)
	}

	return &Rule{name: name, state: L, fn: fn}, nil
}

// Name implements dispatch.Rule.
func (r *Rule) Name() string {
	return r.name
}

// Admit implements dispatch.Rule. A closed rule or a Lua error rejects;
// a rule that cannot run must not widen admission.
func (r *Rule) Admit(value string, selectionLength int, inserted string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	err := r.state.CallByParam(
		lua.P{Fn: r.fn, NRet: 1, Protect: true},
		lua.LString(value),
		lua.LNumber(selectionLength),
		lua.LString(inserted),
	)
	if err != nil {
		return false
	}

	ret := r.state.Get(-1)
	r.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Close releases the Lua state. Safe to call more than once.
func (r *Rule) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRuleClosed
	}
	r.closed = true
	r.state.Close()
	return nil
}

// sandbox removes the functions a chunk could use to load code from disk.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

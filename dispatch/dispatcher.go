package dispatch

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vdelcros/vma/control"
	"github.com/vdelcros/vma/guard"
	"github.com/vdelcros/vma/selection"
)

// Dispatcher evaluates input events against controls and applies the
// suppress-on-reject contract. Evaluation itself is stateless; the
// dispatcher only holds wiring (resolver, clipboard sources, hooks, rules,
// bindings).
type Dispatcher struct {
	mu sync.RWMutex

	resolver  *selection.Resolver
	clipboard []ClipboardSource

	preHooks  []PreHook
	postHooks []PostHook
	rules     []Rule

	bindings map[uuid.UUID]*Binding
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithResolver replaces the default selection resolver.
func WithResolver(r *selection.Resolver) Option {
	return func(d *Dispatcher) {
		d.resolver = r
	}
}

// WithClipboard appends fallback clipboard sources consulted when a paste
// event carries no payload.
func WithClipboard(sources ...ClipboardSource) Option {
	return func(d *Dispatcher) {
		d.clipboard = append(d.clipboard, sources...)
	}
}

// WithRule registers an extra admission rule.
func WithRule(rule Rule) Option {
	return func(d *Dispatcher) {
		d.rules = append(d.rules, rule)
	}
}

// New creates a dispatcher. Without options it uses the default selection
// resolver and only event payloads for pastes.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		resolver: selection.NewDefaultResolver(),
		bindings: make(map[uuid.UUID]*Binding),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterPreHook adds a hook that runs before evaluation and can force
// rejection.
func (d *Dispatcher) RegisterPreHook(h PreHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, h)
}

// RegisterPostHook adds a hook observing verdicts.
func (d *Dispatcher) RegisterPostHook(h PostHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, h)
}

// AddRule registers an extra admission rule.
func (d *Dispatcher) AddRule(rule Rule) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rules = append(d.rules, rule)
}

// EvaluateKeystroke returns the verdict for a normalized keystroke
// against ctrl.
func (d *Dispatcher) EvaluateKeystroke(ctrl control.Control, ev Keystroke) guard.Verdict {
	if !d.runPreHooks(ctrl, ev) {
		return d.finish(ctrl, ev, guard.Reject)
	}

	c := constraintOf(ctrl)
	selLen := d.resolver.Resolve(ctrl)
	verdict := guard.EvaluateKeystroke(ctrl.Value(), selLen, ev.Code, ev.Modifiers, c)

	if verdict.Admitted() {
		verdict = d.applyRules(ctrl, selLen, admittedContent(ev))
	}
	return d.finish(ctrl, ev, verdict)
}

// EvaluatePaste returns the verdict for a paste event against ctrl.
func (d *Dispatcher) EvaluatePaste(ctrl control.Control, ev Paste) guard.Verdict {
	if !d.runPreHooks(ctrl, ev) {
		return d.finish(ctrl, ev, guard.Reject)
	}

	c := constraintOf(ctrl)
	selLen := d.resolver.Resolve(ctrl)
	verdict := guard.EvaluatePaste(ctrl.Value(), selLen, ev.Text, c)

	if verdict.Admitted() {
		verdict = d.applyRules(ctrl, selLen, ev.Text)
	}
	return d.finish(ctrl, ev, verdict)
}

// SelectionLength exposes the resolver's answer for a control, mainly for
// hosts that need the same number to apply an admitted mutation.
func (d *Dispatcher) SelectionLength(ctrl control.Control) int {
	return d.resolver.Resolve(ctrl)
}

// runPreHooks returns false when any pre-hook cancels the event.
func (d *Dispatcher) runPreHooks(ctrl control.Control, ev Event) bool {
	d.mu.RLock()
	hooks := d.preHooks
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h(ctrl, ev) {
			return false
		}
	}
	return true
}

// applyRules narrows an Admit verdict through the registered rules.
func (d *Dispatcher) applyRules(ctrl control.Control, selLen int, inserted string) guard.Verdict {
	d.mu.RLock()
	rules := d.rules
	d.mu.RUnlock()

	for _, r := range rules {
		if !r.Admit(ctrl.Value(), selLen, inserted) {
			return guard.Reject
		}
	}
	return guard.Admit
}

// finish delivers the verdict to post-hooks and the caller.
func (d *Dispatcher) finish(ctrl control.Control, ev Event, verdict guard.Verdict) guard.Verdict {
	d.mu.RLock()
	hooks := d.postHooks
	d.mu.RUnlock()

	for _, h := range hooks {
		h(ctrl, ev, verdict)
	}
	return verdict
}

// constraintOf reads the control's max attribute. Absent or malformed
// attributes disable the constraint rather than failing the control.
func constraintOf(ctrl control.Control) guard.Constraint {
	attr, ok := ctrl.Attr(control.MaxAttr)
	if !ok {
		return guard.Constraint{}
	}
	return guard.ParseConstraint(attr)
}

// admittedContent is the text a keystroke will insert if allowed: the
// digit itself, or nothing for control keys and modifier combinations.
func admittedContent(ev Keystroke) string {
	if guard.AdmittedLength(ev.Code, ev.Modifiers) == 0 {
		return ""
	}
	return string(ev.Code.Rune())
}

// Binding couples a control with suppress-on-reject handlers for
// keypress and paste events.
type Binding struct {
	id   uuid.UUID
	d    *Dispatcher
	ctrl control.Control
}

// Attach wires suppress-on-reject handlers for a control and returns the
// binding the host routes events through.
func (d *Dispatcher) Attach(ctrl control.Control) *Binding {
	b := &Binding{id: uuid.New(), d: d, ctrl: ctrl}
	d.mu.Lock()
	d.bindings[b.id] = b
	d.mu.Unlock()
	return b
}

// Detach removes a binding. It reports whether the binding was attached.
func (d *Dispatcher) Detach(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.bindings[id]; !ok {
		return false
	}
	delete(d.bindings, id)
	return true
}

// Attached returns the number of live bindings.
func (d *Dispatcher) Attached() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.bindings)
}

// ID identifies the binding for Detach.
func (b *Binding) ID() uuid.UUID {
	return b.id
}

// Control returns the bound control.
func (b *Binding) Control() control.Control {
	return b.ctrl
}

// Keypress is the keypress handler: it normalizes the raw event and
// returns true when the host should allow the native insertion.
func (b *Binding) Keypress(raw Raw) bool {
	return b.d.EvaluateKeystroke(b.ctrl, raw.Normalize()).Admitted()
}

// Keystroke evaluates an already-normalized keystroke.
func (b *Binding) Keystroke(ev Keystroke) bool {
	return b.d.EvaluateKeystroke(b.ctrl, ev).Admitted()
}

// Paste is the paste handler. The event payload, when present, is
// consulted before the dispatcher's fallback clipboard sources. When no
// source has a payload the paste is suppressed: content that cannot be
// read cannot be validated.
func (b *Binding) Paste(payload string, present bool) bool {
	sources := make([]ClipboardSource, 0, 1+len(b.d.clipboard))
	sources = append(sources, PayloadSource{Payload: payload, Present: present})
	sources = append(sources, b.d.clipboard...)

	ev, ok := resolvePaste(sources...)
	if !ok {
		return false
	}
	return b.d.EvaluatePaste(b.ctrl, ev).Admitted()
}

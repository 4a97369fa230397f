//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/permute.go
//

package posixarg

// orderTracker enforces [ParserConfig.AllowInterleavedOptions] and
// [ParserConfig.StrictOptionOrder].
//
// The teacher library's permute.go reorders a flat options-then-
// positionals output slice after the fact, gated by a single
// DisablePermute knob. This package's result tree has no flat ordering
// to restore (options and positionals are independent maps), so the
// same "stop parsing options once a positional has appeared" behavior
// instead has to be enforced live, during the single token-dispatch
// pass (engine.go): StrictOptionOrder is treated as an intensified
// form of disabling interleaving — once either knob forbids it, any
// token seen after the first positional, other than the "--" separator
// (which still starts the extras), is captured verbatim as a
// further positional value, exactly like the teacher's "onlypositionals"
// flag, rather than being re-resolved as an option or subcommand. This
// choice resolves spec.md §9's open question about the interaction
// between the two knobs without introducing a parse error spec.md §7's
// closed taxonomy does not name; see DESIGN.md.
type orderTracker struct {
	interleaved    bool
	seenPositional bool
}

func newOrderTracker(cfg *ParserConfig) *orderTracker {
	return &orderTracker{interleaved: cfg.AllowInterleavedOptions && !cfg.StrictOptionOrder}
}

// ObservePositional records that a positional value was just captured.
func (t *orderTracker) ObservePositional() {
	t.seenPositional = true
}

// ForcePositional reports whether every subsequent token (regardless of
// its lexical shape, except the "--" separator) must now be captured as
// a literal positional value.
func (t *orderTracker) ForcePositional() bool {
	return t.seenPositional && !t.interleaved
}

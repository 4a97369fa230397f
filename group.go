//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/permute.go
//

package posixarg

// positionalCapture is one positional-shaped value collected while
// walking a command's token stream, together with the index of the
// token it came from (used to report [UnexpectedPositionalArgumentError]
// precisely).
type positionalCapture struct {
	value string
	index int
}

// effectivePositionals returns c's declared positionals, or a single
// synthesized catch-all ("args", [ZeroOrMore]) when c declares none and
// [ParserConfig.ImplicitCatchAllPositional] is set.
func (c *CommandSpec) effectivePositionals() []*PositionalSpec {
	if len(c.positionals) > 0 || !c.config.ImplicitCatchAllPositional {
		return c.positionals
	}
	catchAll, err := NewPositionalSpec("args", ZeroOrMore)
	if err != nil {
		panic(err) // "args"/ZeroOrMore are always valid
	}
	return []*PositionalSpec{catchAll}
}

// groupPositionals allocates captures across cmd's effective positionals
// in declaration order.
//
// Each positional first reserves its arity minimum; remaining captures
// ("leftover") are then handed out left to right, each positional taking
// up to its own arity maximum (or, for the single positional allowed to
// be unbounded, absorbing everything left). This is a deliberate
// simplification of the general nargs-distribution problem: spec.md
// only guarantees at most one unbounded positional per command and does
// not mandate a particular distribution policy for the rest, so a
// strict left-to-right greedy fill was chosen for predictability; see
// DESIGN.md.
func groupPositionals(cmd *CommandSpec, captures []positionalCapture) (map[string]*ParsedPositional, error) {
	specs := cmd.effectivePositionals()
	total := len(captures)

	sumMin := 0
	for _, p := range specs {
		sumMin += p.arity.Min
	}
	if sumMin > total {
		running := 0
		for _, p := range specs {
			running += p.arity.Min
			if running > total {
				got := p.arity.Min - (running - total)
				if got < 0 {
					got = 0
				}
				return nil, InsufficientPositionalArgumentsError{
					Command: cmd.name, Positional: p.name, Want: p.arity.Min, Got: got,
				}
			}
		}
	}

	alloc := make([]int, len(specs))
	for i, p := range specs {
		alloc[i] = p.arity.Min
	}
	leftover := total - sumMin
	for i, p := range specs {
		if leftover <= 0 {
			break
		}
		capacity := p.arity.Max - p.arity.Min
		if p.arity.IsUnbounded() {
			capacity = leftover
		}
		take := leftover
		if take > capacity {
			take = capacity
		}
		alloc[i] += take
		leftover -= take
	}
	if leftover > 0 {
		idx := total - leftover
		return nil, UnexpectedPositionalArgumentError{
			Command: cmd.name, Token: captures[idx].value, Index: captures[idx].index,
		}
	}

	result := make(map[string]*ParsedPositional, len(specs))
	cursor := 0
	for i, p := range specs {
		n := alloc[i]
		values := make([]string, 0, n)
		for j := 0; j < n; j++ {
			values = append(values, captures[cursor].value)
			cursor++
		}
		var value any
		if p.arity.Min == 1 && p.arity.Max == 1 {
			value = values[0]
		} else {
			value = values
		}
		result[p.name] = &ParsedPositional{name: p.name, value: value}
	}
	return result, nil
}

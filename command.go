//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/flagparser/blob/main/config.go
//

package posixarg

import "strings"

// reservedSeparator is the one reserved token a command or subcommand
// name or alias may never collide with.
const reservedSeparator = "--"

// CommandSpec is an immutable, validated specification of a command and
// (recursively) its subcommands.
//
// Construct with [NewCommandSpec]; name-resolution tables
// (long-name index, short-name index, subcommand index) are built
// eagerly at construction time and never recomputed.
type CommandSpec struct {
	name        string
	aliases     []string
	options     []*OptionSpec
	optionByName map[string]*OptionSpec
	positionals []*PositionalSpec
	subcommands []*CommandSpec
	config      *ParserConfig

	// longIndex maps a normalized long name to the owning option's name.
	longIndex map[string]string

	// shortIndex maps a (possibly normalized) short byte to the
	// owning option's name.
	shortIndex map[byte]string

	// subcommandIndex maps a normalized name or alias to the canonical
	// subcommand name.
	subcommandIndex map[string]string
}

// Name returns the command's canonical name.
func (c *CommandSpec) Name() string { return c.name }

// Aliases returns the command's configured aliases.
func (c *CommandSpec) Aliases() []string { return append([]string(nil), c.aliases...) }

// Options returns the command's options in declaration order.
func (c *CommandSpec) Options() []*OptionSpec { return append([]*OptionSpec(nil), c.options...) }

// Positionals returns the command's positionals in declaration order.
func (c *CommandSpec) Positionals() []*PositionalSpec {
	return append([]*PositionalSpec(nil), c.positionals...)
}

// Subcommands returns the command's direct subcommands in declaration
// order.
func (c *CommandSpec) Subcommands() []*CommandSpec {
	return append([]*CommandSpec(nil), c.subcommands...)
}

// Config returns the effective [ParserConfig] for this command (its own
// override, or the one inherited from its parent).
func (c *CommandSpec) Config() *ParserConfig { return c.config }

// Option returns the option spec with the given name, if any.
func (c *CommandSpec) Option(name string) (*OptionSpec, bool) {
	o, ok := c.optionByName[name]
	return o, ok
}

// HasSubcommands returns true if the command declares any subcommands.
func (c *CommandSpec) HasSubcommands() bool { return len(c.subcommands) > 0 }

// CommandSpecOption configures a [CommandSpec] during construction.
type CommandSpecOption func(*commandBuilder)

type commandBuilder struct {
	aliases     []string
	options     []*OptionSpec
	positionals []*PositionalSpec
	subcommands []*CommandSpec
	config      *ParserConfig
}

// WithAliases declares one or more alternate names for the command
// being constructed (used only for subcommands: a root command's
// aliases are never matched against).
func WithAliases(aliases ...string) CommandSpecOption {
	return func(b *commandBuilder) { b.aliases = append(b.aliases, aliases...) }
}

// WithOptions declares the command's options.
func WithOptions(options ...*OptionSpec) CommandSpecOption {
	return func(b *commandBuilder) { b.options = append(b.options, options...) }
}

// WithPositionals declares the command's positionals, in the order they
// are allocated values during positional grouping.
func WithPositionals(positionals ...*PositionalSpec) CommandSpecOption {
	return func(b *commandBuilder) { b.positionals = append(b.positionals, positionals...) }
}

// WithSubcommands declares the command's direct subcommands.
func WithSubcommands(subcommands ...*CommandSpec) CommandSpecOption {
	return func(b *commandBuilder) { b.subcommands = append(b.subcommands, subcommands...) }
}

// WithConfig overrides the [ParserConfig] this command (and, by
// inheritance, its subcommands which do not set their own) uses. When
// omitted, [NewCommandSpec] inherits the parentConfig argument, or
// [DefaultConfig] for a root command constructed with a nil
// parentConfig.
func WithConfig(cfg *ParserConfig) CommandSpecOption {
	return func(b *commandBuilder) { b.config = cfg }
}

// NewCommandSpec constructs and validates a [CommandSpec].
//
// parentConfig is the configuration inherited from the enclosing
// command, or nil for a root command (in which case [DefaultConfig] is
// used unless overridden with [WithConfig]). Subcommands should be
// constructed bottom-up: build each subcommand's [CommandSpec] (passing
// this command's effective config as its parentConfig) before passing
// it to [WithSubcommands] for the parent.
//
// This validates every invariant from spec.md §3/§4.1: option names,
// short names, and subcommand names/aliases must not collide within
// the command; at most one positional may have unbounded arity; a
// negation prefix applied to an option's long name must not collide
// with any other configured long name; and no name may equal the
// reserved "--" token.
func NewCommandSpec(name string, parentConfig *ParserConfig, opts ...CommandSpecOption) (*CommandSpec, error) {
	b := &commandBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	cfg := b.config
	if cfg == nil {
		if parentConfig != nil {
			cfg = parentConfig
		} else {
			cfg = DefaultConfig()
		}
	}

	if name == reservedSeparator {
		return nil, ReservedTokenError{Command: name, Token: name}
	}

	c := &CommandSpec{
		name:            name,
		aliases:         b.aliases,
		options:         b.options,
		optionByName:    make(map[string]*OptionSpec, len(b.options)),
		positionals:     b.positionals,
		subcommands:     b.subcommands,
		config:          cfg,
		longIndex:       make(map[string]string),
		shortIndex:      make(map[byte]string),
		subcommandIndex: make(map[string]string),
	}

	if err := c.indexOptions(); err != nil {
		return nil, err
	}
	if err := c.validatePositionals(); err != nil {
		return nil, err
	}
	if err := c.indexSubcommands(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CommandSpec) normalizeLong(name string) string {
	if c.config.NormalizeUnderscoresToDashes {
		name = strings.ReplaceAll(name, "_", "-")
	}
	if !c.config.CaseSensitiveLong {
		name = asciiLower(name)
	}
	return name
}

func (c *CommandSpec) normalizeShort(b byte) byte {
	if !c.config.CaseSensitiveShort && b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func (c *CommandSpec) normalizeSubcommandName(name string) string {
	if c.config.NormalizeUnderscoresToDashes {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return asciiLower(name)
}

func (c *CommandSpec) indexOptions() error {
	for _, opt := range c.options {
		if opt == nil {
			continue
		}
		if _, dup := c.optionByName[opt.name]; dup {
			return DuplicateOptionNameError{Command: c.name, Name: opt.name}
		}
		c.optionByName[opt.name] = opt

		for _, long := range opt.long {
			key := c.normalizeLong(long)
			if _, dup := c.longIndex[key]; dup {
				return DuplicateOptionNameError{Command: c.name, Name: long}
			}
			c.longIndex[key] = opt.name
		}
		for _, short := range opt.short {
			key := c.normalizeShort(short)
			if _, dup := c.shortIndex[key]; dup {
				return DuplicateShortNameError{Command: c.name, Short: short}
			}
			c.shortIndex[key] = opt.name
		}
	}

	// Negation prefixes must not collide with any configured long name,
	// including each other's.
	for _, opt := range c.options {
		for _, prefix := range opt.negationPrefixes {
			for _, long := range opt.long {
				negated := c.normalizeLong(prefix + "-" + long)
				if owner, exists := c.longIndex[negated]; exists && owner != opt.name {
					return ConflictingNegationPrefixError{Command: c.name, Option: opt.name, Negation: negated}
				}
			}
		}
	}
	return nil
}

func (c *CommandSpec) validatePositionals() error {
	var unbounded *PositionalSpec
	for _, p := range c.positionals {
		if p == nil {
			continue
		}
		if p.arity.IsUnbounded() {
			if unbounded != nil {
				return MultipleUnboundedPositionalsError{Command: c.name, First: unbounded.name, Second: p.name}
			}
			unbounded = p
		}
	}
	return nil
}

func (c *CommandSpec) indexSubcommands() error {
	for _, sub := range c.subcommands {
		if sub == nil {
			continue
		}
		names := append([]string{sub.name}, sub.aliases...)
		for _, n := range names {
			if n == reservedSeparator {
				return ReservedTokenError{Command: c.name, Token: n}
			}
			key := c.normalizeSubcommandName(n)
			if _, dup := c.subcommandIndex[key]; dup {
				return DuplicateSubcommandNameError{Command: c.name, Name: n}
			}
			c.subcommandIndex[key] = sub.name
		}
	}
	return nil
}

// Package command checks the shape of command arguments.
//
// Every argument is a single token of the form -flag 'value'. Validators in this package
// only look at the tokens; checks that need stored entities live in the service layer.
package command

import (
	"strconv"
	"strings"
)

// Arg is one parsed token.
type Arg struct {
	Flag     string
	Value    string
	HasValue bool
}

// Is reports whether the token carries flag and a value.
func (a Arg) Is(flag string) bool {
	return a.Flag == flag && a.HasValue
}

// Int parses the value as an integer.
func (a Arg) Int() (int, bool) {
	if !a.HasValue {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(a.Value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseArg splits a token into its flag and its quoted value.
// The flag is the trimmed text before the first quote; the value runs to the next quote.
func ParseArg(token string) Arg {
	start := strings.IndexByte(token, '\'')
	if start < 0 {
		return Arg{Flag: strings.TrimSpace(token)}
	}
	arg := Arg{Flag: strings.TrimSpace(token[:start])}
	rest := token[start+1:]
	if end := strings.IndexByte(rest, '\''); end >= 0 {
		rest = rest[:end]
	}
	if rest != "" {
		arg.Value = rest
		arg.HasValue = true
	}
	return arg
}

// Args is the ordered argument list of one command, command name excluded.
type Args []Arg

// Parse converts raw tokens into Args.
func Parse(tokens []string) Args {
	args := make(Args, 0, len(tokens))
	for _, tok := range tokens {
		args = append(args, ParseArg(tok))
	}
	return args
}

// At returns the argument at i, or a zero Arg when out of range.
func (a Args) At(i int) Arg {
	if i < 0 || i >= len(a) {
		return Arg{}
	}
	return a[i]
}

// Payload returns the arguments that follow the credentials.
func (a Args) Payload() Args {
	if len(a) <= 2 {
		return nil
	}
	return a[2:]
}

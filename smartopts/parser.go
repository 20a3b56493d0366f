package smartopts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// parseState tracks the scan through the argument vector. Scanning is the
// only non-terminal state: the first unresolved dashed token moves to
// stateInvalidArgument immediately, everything else is decided after the
// vector is exhausted.
type parseState int

const (
	stateScanning parseState = iota
	stateInvalidArgument
	stateInvalidCount
	stateSucceeded
)

// scanState is the per-call bookkeeping of the positional consumer.
type scanState struct {
	next           int      // next positional slot to fill
	seen           int      // positional tokens observed, matched or overflowed
	overflow       []string // tokens with no slot, kept for the diagnostic
	positionalOnly bool     // set once "--" has been seen
}

// dashedResult is the outcome of resolving one dashed token.
type dashedResult struct {
	consumed bool
	usedNext bool   // the token's value was taken from the following token
	missing  string // missing-value diagnostic when an option matched valueless at end of input
}

// ProcessCommandArgs scans the argument vector left to right exactly once and
// fills the registered destinations. args is the full vector including the
// program name at index 0, as handed to the process (os.Args).
//
// Dashed tokens are matched against flags first, then options, in
// registration order. Option values are taken from the remainder of the
// token (-ovalue, --opt=value) or verbatim from the following token
// (-o value, --opt value). Everything else fills positional slots in
// declaration order.
//
// Semantics callers should know about:
//   - a repeated option or flag is last-write-wins;
//   - a bare "-" matches nothing and fails the parse;
//   - "--" ends dashed matching, later tokens are positional;
//   - destinations not supplied on the command line keep the zero value set
//     at registration — an omitted option is not an error;
//   - on a failed parse only the destinations filled before the failure
//     point hold command-line values, so branch on the status first.
//
// Re-invocation rescans from scratch; destinations simply get overwritten.
func (s *SmartOptions) ProcessCommandArgs(args []string) Status {
	if len(args) == 0 {
		// Not even a program name: the hosting environment handed us a
		// malformed vector, nothing here can be diagnosed to the user.
		return SystemError
	}

	switch s.scan(args) {
	case stateInvalidArgument:
		return InvalidArgument
	case stateInvalidCount:
		return InvalidNumberOfArguments
	default:
		return Success
	}
}

// scan runs the state machine over the vector: a single left-to-right pass
// with selective look-ahead for separated option values, then the positional
// count check. Both failure states are terminal.
func (s *SmartOptions) scan(args []string) parseState {
	var scan scanState
	state := stateScanning

	for i := 1; i < len(args) && state == stateScanning; i++ {
		token := args[i]

		if scan.positionalOnly || !strings.HasPrefix(token, "-") {
			s.consumePositional(token, &scan)
			continue
		}
		if token == "--" {
			scan.positionalOnly = true
			continue
		}

		last := i == len(args)-1
		var next string
		if !last {
			next = args[i+1]
		}

		res := s.resolveDashed(token, last, next)
		if res.usedNext {
			i++
		}
		if !res.consumed {
			state = stateInvalidArgument
			s.failInvalidArgument(token, res.missing)
		}
	}

	if state == stateScanning {
		if scan.seen != len(s.posArgs) {
			state = stateInvalidCount
			s.failInvalidCount(scan.overflow)
		} else {
			state = stateSucceeded
		}
	}
	return state
}

// resolveDashed matches one dashed token against the flag collection, then
// the option collection. Exactly one of {flag matched, option matched
// (possibly with a missing value), unresolved} holds for every token.
func (s *SmartOptions) resolveDashed(token string, last bool, next string) dashedResult {
	if strings.HasPrefix(token, "--") {
		return s.resolveLong(token[2:], last, next)
	}
	return s.resolveShort(token[1:], last, next)
}

// resolveShort handles -f, -ovalue and -o value. Only the first character
// after the dash participates in matching; a flag match consumes the whole
// token.
func (s *SmartOptions) resolveShort(rest string, last bool, next string) dashedResult {
	if rest == "" {
		// Bare "-" deliberately matches nothing; see ProcessCommandArgs.
		return dashedResult{}
	}
	code, size := utf8.DecodeRuneInString(rest)

	for i := range s.flags {
		if s.flags[i].Short == code {
			*s.flags[i].dest = true
			return dashedResult{consumed: true}
		}
	}

	for i := range s.options {
		opt := &s.options[i]
		if opt.Short != code {
			continue
		}
		if len(rest) > size {
			// Attached form: the remainder of the token is the value.
			*opt.dest = rest[size:]
			return dashedResult{consumed: true}
		}
		if last {
			return dashedResult{missing: s.missingValueMessage("-" + string(code))}
		}
		// Separated form: the next token is the value, verbatim.
		*opt.dest = next
		return dashedResult{consumed: true, usedNext: true}
	}

	return dashedResult{}
}

// resolveLong handles --name, --name=value and --name value.
func (s *SmartOptions) resolveLong(rest string, last bool, next string) dashedResult {
	name := rest
	value := ""
	attached := false
	if eq := strings.IndexByte(rest, '='); eq != -1 {
		name, value, attached = rest[:eq], rest[eq+1:], true
	}
	if name == "" {
		return dashedResult{}
	}

	for i := range s.flags {
		if s.flags[i].Long == name {
			*s.flags[i].dest = true
			return dashedResult{consumed: true}
		}
	}

	for i := range s.options {
		opt := &s.options[i]
		if opt.Long != name {
			continue
		}
		if attached {
			*opt.dest = value
			return dashedResult{consumed: true}
		}
		if last {
			return dashedResult{missing: s.missingValueMessage("--" + name)}
		}
		*opt.dest = next
		return dashedResult{consumed: true, usedNext: true}
	}

	return dashedResult{}
}

// consumePositional assigns a positional token to the current slot, or
// records it as overflow once the declared slots are exhausted. The seen
// count advances either way; the post-scan check compares it against the
// number of declared slots.
func (s *SmartOptions) consumePositional(token string, scan *scanState) {
	if scan.next < len(s.posArgs) {
		*s.posArgs[scan.next].dest = token
		scan.next++
	} else {
		scan.overflow = append(scan.overflow, token)
	}
	scan.seen++
}

// failInvalidArgument emits the diagnostic for an unresolved dashed token.
// All output is suppressed when auto-help is disabled.
func (s *SmartOptions) failInvalidArgument(token, missing string) {
	if !s.autoHelp {
		return
	}
	w := s.io.Err()
	if missing != "" {
		fmt.Fprintln(w, missing)
	} else {
		fmt.Fprintln(w, s.invalidArgumentMessage(displayToken(token)))
		if strings.HasPrefix(token, "--") {
			if hint := s.suggestLong(longName(token)); hint != "" {
				fmt.Fprintln(w, hint)
			}
		}
	}
	s.PrintHelp()
}

// failInvalidCount emits the positional-count diagnostic after a full scan.
func (s *SmartOptions) failInvalidCount(overflow []string) {
	if !s.autoHelp {
		return
	}
	w := s.io.Err()
	if len(overflow) > 0 {
		fmt.Fprintln(w, s.overflowMessage(overflow))
	} else {
		fmt.Fprintln(w, s.shortfallMessage())
	}
	s.PrintHelp()
}

// displayToken reduces a failed token to the spelling shown in diagnostics:
// the long name without any =value, or the dash plus first character.
func displayToken(token string) string {
	if strings.HasPrefix(token, "--") {
		return "--" + longName(token)
	}
	rest := token[1:]
	if rest == "" {
		return "-"
	}
	code, _ := utf8.DecodeRuneInString(rest)
	return "-" + string(code)
}

// longName extracts the name part of a --name or --name=value token.
func longName(token string) string {
	name := strings.TrimPrefix(token, "--")
	if eq := strings.IndexByte(name, '='); eq != -1 {
		name = name[:eq]
	}
	return name
}

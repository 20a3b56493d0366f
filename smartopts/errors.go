package smartopts

import (
	"fmt"
	"strings"

	"github.com/smartopts/go-smartopts/internal/fuzzy"
)

// suggestionMaxDistance bounds the edit distance for "did you mean"
// suggestions on mistyped long arguments.
const suggestionMaxDistance = 2

// ConfigError reports an invalid registration call. Registration fails
// eagerly so a duplicate spelling cannot silently shadow an earlier rule
// during the scan.
type ConfigError struct {
	Arg    string // offending spelling ("-o", "--option") or meta name
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Arg == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Arg, e.Reason)
}

// Diagnostic message builders. These compose the advisory text printed (via
// the IO manager) when auto-help is enabled; the text is never returned to
// the caller, only the Status is.

func (s *SmartOptions) missingValueMessage(arg string) string {
	return fmt.Sprintf("%s: Error, missing value for '%s' option.", s.name, arg)
}

func (s *SmartOptions) invalidArgumentMessage(arg string) string {
	return fmt.Sprintf("%s: Error, invalid argument '%s'.", s.name, arg)
}

// overflowMessage reports positional tokens that found no declared slot.
func (s *SmartOptions) overflowMessage(overflow []string) string {
	return fmt.Sprintf("%s: Error, invalid number of mandatory arguments (%s)",
		s.name, joinAmpersand(overflow))
}

// shortfallMessage reports too few positional tokens, enumerating the
// declared parameter names so the caller knows what was expected.
func (s *SmartOptions) shortfallMessage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Error, invalid number of mandatory arguments", s.name)
	if len(s.posArgs) == 1 {
		fmt.Fprintf(&b, ". The only mandatory parameter is '%s'", s.posArgs[0].Meta)
		return b.String()
	}
	names := make([]string, len(s.posArgs))
	for i := range s.posArgs {
		names[i] = "'" + s.posArgs[i].Meta + "'"
	}
	fmt.Fprintf(&b, ". The mandatory parameters are %s.", joinAmpersand(names))
	return b.String()
}

// suggestLong returns a "Did you mean" line for a mistyped long argument, or
// "" when nothing is close enough. Candidates span flags and options alike.
func (s *SmartOptions) suggestLong(input string) string {
	candidates := make([]string, 0, len(s.flags)+len(s.options))
	for i := range s.flags {
		if s.flags[i].Long != "" {
			candidates = append(candidates, s.flags[i].Long)
		}
	}
	for i := range s.options {
		if s.options[i].Long != "" {
			candidates = append(candidates, s.options[i].Long)
		}
	}
	best := fuzzy.FindBestOption(input, candidates, suggestionMaxDistance)
	if best == "" {
		return ""
	}
	return fmt.Sprintf("  Did you mean '--%s'?", best)
}

// joinAmpersand joins items with ", ", except the final separator which is
// rendered " & " for readability: "a, b & c".
func joinAmpersand(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " & " + items[len(items)-1]
}

package smartopts

import "fmt"

// helpColumn is the width of the left column in help output, matching the
// fixed padding the diagnostics were designed around.
const helpColumn = 32

// PrintHelp writes the usage header followed by one line per declared option
// and flag to the IO manager's output writer. The engine calls it on failing
// parses when auto-help is enabled; callers may also invoke it directly
// (e.g. behind their own -h flag).
func (s *SmartOptions) PrintHelp() {
	w := s.io.Out()

	fmt.Fprintf(w, "%s %s\n", s.io.Bold(s.name), s.usage)
	if s.description != "" {
		fmt.Fprintln(w, s.description)
	}

	for i := range s.options {
		opt := &s.options[i]
		left := fmt.Sprintf("  %s <%s>", spelling(opt.Short, opt.Long), opt.Meta)
		fmt.Fprintf(w, "%-*s %s\n", helpColumn, left, opt.Help)
	}
	for i := range s.flags {
		f := &s.flags[i]
		left := fmt.Sprintf("  %s", spelling(f.Short, f.Long))
		fmt.Fprintf(w, "%-*s %s\n", helpColumn, left, f.Help)
	}
}

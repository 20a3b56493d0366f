// Package smartopts processes command line arguments: callers declare
// options (valued), flags (boolean) and positional parameters together with
// destination variables, then hand over the raw argument vector once. The
// engine fills the destinations and reports one of four status codes.
//
//	opts := smartopts.New("cp", true).Usage("[OPTION]... SOURCE DEST")
//
//	var verbose bool
//	var suffix, src, dst string
//	opts.AddFlag('v', "verbose", "explain what is being done", &verbose)
//	opts.AddOption('S', "suffix", "SUFFIX", "override the usual backup suffix", &suffix)
//	opts.AddPositionalArgument("SOURCE", "file to copy", &src)
//	opts.AddPositionalArgument("DEST", "copy target", &dst)
//
//	if status := opts.ProcessCommandArgs(os.Args); status != smartopts.Success {
//		os.Exit(int(status))
//	}
package smartopts

import (
	smartio "github.com/smartopts/go-smartopts/io"
)

// SmartOptions holds the declared argument rules and the program identity
// used in help and diagnostic output. Declare everything first, then call
// ProcessCommandArgs.
type SmartOptions struct {
	name        string
	usage       string
	description string
	autoHelp    bool

	options []OptionArg
	flags   []FlagArg
	posArgs []PositionalArg

	io *smartio.Manager
}

// New creates an engine for the named program. When autoHelp is true, a
// failing parse prints a diagnostic followed by the help text; when false,
// parsing is silent and callers branch on the returned status alone.
func New(name string, autoHelp bool) *SmartOptions {
	return &SmartOptions{
		name:     name,
		autoHelp: autoHelp,
		io:       smartio.New(),
	}
}

// Description sets the program description shown by PrintHelp.
func (s *SmartOptions) Description(text string) *SmartOptions {
	s.description = text
	return s
}

// Usage sets the usage string shown in the help header, e.g.
// "[OPTION]... <PATH>".
func (s *SmartOptions) Usage(text string) *SmartOptions {
	s.usage = text
	return s
}

// WithIO replaces the IO manager used for help and diagnostic output.
func (s *SmartOptions) WithIO(m *smartio.Manager) *SmartOptions {
	s.io = m
	return s
}

// IO returns the engine's IO manager.
func (s *SmartOptions) IO() *smartio.Manager { return s.io }

// AddOption declares a valued argument reachable as -<short> or --<long>.
// The value is handed back verbatim through dest, which is reset to "" now.
// Either spelling may be omitted (short 0, long ""), not both. Registration
// fails on a spelling already claimed by another option or flag.
func (s *SmartOptions) AddOption(short rune, long, meta, help string, dest *string) error {
	if dest == nil {
		return &ConfigError{Arg: spelling(short, long), Reason: "nil destination"}
	}
	if err := s.checkSpelling(short, long); err != nil {
		return err
	}
	*dest = ""
	s.options = append(s.options, OptionArg{Short: short, Long: long, Meta: meta, Help: help, dest: dest})
	return nil
}

// AddFlag declares a boolean argument reachable as -<short> or --<long>.
// Presence on the command line sets dest to true; dest is reset to false now.
func (s *SmartOptions) AddFlag(short rune, long, help string, dest *bool) error {
	if dest == nil {
		return &ConfigError{Arg: spelling(short, long), Reason: "nil destination"}
	}
	if err := s.checkSpelling(short, long); err != nil {
		return err
	}
	*dest = false
	s.flags = append(s.flags, FlagArg{Short: short, Long: long, Help: help, dest: dest})
	return nil
}

// AddPositionalArgument declares the next unclaimed positional slot, in call
// order. Every declared slot is mandatory: ProcessCommandArgs fails unless
// the vector supplies exactly one token per slot.
func (s *SmartOptions) AddPositionalArgument(meta, help string, dest *string) error {
	if dest == nil {
		return &ConfigError{Arg: meta, Reason: "nil destination"}
	}
	*dest = ""
	s.posArgs = append(s.posArgs, PositionalArg{Meta: meta, Help: help, dest: dest})
	return nil
}

// checkSpelling rejects unusable or already-claimed spellings. A duplicate
// spelling would silently shadow the earlier registration during the scan;
// failing here makes the mistake visible to the author instead.
func (s *SmartOptions) checkSpelling(short rune, long string) error {
	if short == 0 && long == "" {
		return &ConfigError{Arg: "", Reason: "argument needs a short or long spelling"}
	}
	for i := range s.flags {
		if short != 0 && s.flags[i].Short == short {
			return &ConfigError{Arg: spelling(short, ""), Reason: "already registered"}
		}
		if long != "" && s.flags[i].Long == long {
			return &ConfigError{Arg: spelling(0, long), Reason: "already registered"}
		}
	}
	for i := range s.options {
		if short != 0 && s.options[i].Short == short {
			return &ConfigError{Arg: spelling(short, ""), Reason: "already registered"}
		}
		if long != "" && s.options[i].Long == long {
			return &ConfigError{Arg: spelling(0, long), Reason: "already registered"}
		}
	}
	return nil
}

// spelling renders an argument identity for error messages, preferring the
// short form.
func spelling(short rune, long string) string {
	if short != 0 {
		return "-" + string(short)
	}
	if long != "" {
		return "--" + long
	}
	return ""
}

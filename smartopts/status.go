package smartopts

// Status is the outcome of ProcessCommandArgs.
type Status int

const (
	// Success indicates the whole argument vector was consumed without issues.
	Success Status = iota
	// InvalidArgument indicates a dashed token matched no declared flag or
	// option, or a matched option was missing its value at end of input.
	InvalidArgument
	// InvalidNumberOfArguments indicates the count of positional tokens did
	// not match the number of declared positional slots.
	InvalidNumberOfArguments
	// SystemError is reserved for host-environment failures; the engine only
	// produces it when handed an empty argument vector (no program name).
	SystemError
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case InvalidArgument:
		return "invalid argument"
	case InvalidNumberOfArguments:
		return "invalid number of arguments"
	case SystemError:
		return "system error"
	default:
		return "unknown status"
	}
}

package smartopts

// OptionArg describes a dashed argument that carries a text value
// (-o value, -ovalue, --option value, --option=value).
type OptionArg struct {
	Short rune   // single-character POSIX spelling, 0 if none
	Long  string // GNU long spelling without the leading dashes, "" if none
	Meta  string // meta variable shown in help, e.g. "FILE"
	Help  string

	dest *string
}

// FlagArg describes a dashed argument that carries only a boolean
// presence signal (-v, --verbose).
type FlagArg struct {
	Short rune
	Long  string
	Help  string

	dest *bool
}

// PositionalArg describes an unprefixed argument matched by position.
// Its index in the registration order is its matching order.
type PositionalArg struct {
	Meta string
	Help string

	dest *string
}

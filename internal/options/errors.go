package options

// ErrorKind classifies a validation error.
type ErrorKind int

const (
	// UnknownOption is a dashed name outside the catalog.
	UnknownOption ErrorKind = iota
	// DuplicateScalarOption is a scalar or flag option given more than once.
	DuplicateScalarOption
	// MissingArgument is a setter-only option given with zero arguments.
	MissingArgument
	// ArityMismatch is a setter option given the wrong argument count.
	ArityMismatch
	// InvalidEnumValue is a --mode argument outside the fixed mode set.
	InvalidEnumValue
	// MutualExclusionViolation is both set-* and add-* used for one family.
	MutualExclusionViolation
	// StrayArgument is a top-level argument not attached to any option.
	StrayArgument
)

// Error is a single validation problem. Errors are accumulated during
// validation and reported together; none of them aborts the pass.
type Error struct {
	Kind    ErrorKind
	Option  string
	Message string
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

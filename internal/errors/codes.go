package errors

// Code classifies an error independent of its message
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reasons attached to errors under MetaReason. They narrow a code down to the
// dungeon condition that produced it.
const (
	MetaReason = "reason"

	ReasonGenerationDegenerate = "generation_degenerate"
	ReasonCacheInconsistent    = "cache_inconsistent"
	ReasonInvalidTransition    = "invalid_transition"
)

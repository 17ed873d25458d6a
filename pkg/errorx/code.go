package errorx

type Code int

// Unknown is returned to the client whenever an infrastructure failure
// happens. The detail must be logged server-side, never sent back.
var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008
	NotImplemented   Code = 100009
	TooManyRequests  Code = 100010

	// Ledger codes
	InsufficientPoints Code = 200001
	TaskCapacityFull   Code = 200002
	AlreadyProcessed   Code = 200003
)

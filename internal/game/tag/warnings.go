package tag

// Warning name prefixes shared across the engine. All are non-fatal:
// parsing and execution always return a value.
const (
	UnknownTagWarning       = "UnknownTagWarning"
	GeometryConflictWarning = "GeometryConflictWarning"
	MissingParameterNotice  = "MissingParameterNotice"
	NoValidTargetsNotice    = "NoValidTargetsNotice"
	ContextMismatchNotice   = "ContextMismatchNotice"
)

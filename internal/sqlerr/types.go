package sqlerr

// Code classifies a Postgres error into the handful of categories the
// application cares about. Anything unrecognized maps to Other.
type Code int

const (
	// Other covers every SQLSTATE we do not explicitly handle.
	Other Code = iota

	// UniqueViolation: SQLSTATE 23505, a row collides with a unique constraint.
	UniqueViolation

	// ForeignKeyViolation: SQLSTATE 23503, a referenced row does not exist
	// (or is still referenced on delete).
	ForeignKeyViolation

	// NotNullViolation: SQLSTATE 23502, a required column was NULL.
	NotNullViolation

	// CheckViolation: SQLSTATE 23514, a CHECK constraint rejected a value.
	CheckViolation
)

// String returns a stable name for logging.
func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	default:
		return "other"
	}
}

// MapCode maps a raw SQLSTATE string onto a Code.
//
// SQLSTATE reference: class 23 is "integrity constraint violation".
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// Severity mirrors the severity field Postgres reports with each error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityNotice
	SeverityWarning
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapSeverity maps the severity string from a pgconn.PgError onto a Severity.
func MapSeverity(s string) Severity {
	switch s {
	case "NOTICE":
		return SeverityNotice
	case "WARNING":
		return SeverityWarning
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the normalized form of a Postgres error.
//
// It keeps both the friendly classification (Code, Severity) and the raw
// metadata Postgres reported, so callers can build precise messages
// ("A user with this email already exists") without re-parsing SQLSTATEs.
type Error struct {
	Code         Code
	Severity     Severity
	DatabaseCode string // original SQLSTATE
	Message      string // database's own message

	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	// driverErr is the original error, kept for Unwrap and debugging.
	driverErr error
}

// Error satisfies the error interface with the database's original message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error so errors.Is/As keep working
// against pgconn types.
func (e *Error) Unwrap() error {
	return e.driverErr
}

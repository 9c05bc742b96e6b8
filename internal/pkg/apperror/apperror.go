package apperror

// AppError is a custom error type that includes an HTTP status code and optional field tags.
type AppError struct {
	Code    int               // HTTP Status Code (e.g., 400, 404)
	Message string            // User-facing error message
	Fields  map[string]string // Offending request fields, keyed by field name
	Err     error             // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewField creates an AppError tagged with a single offending field,
// rendered as {"<field>": "<reason>"}.
func NewField(code int, field, reason string) *AppError {
	return &AppError{
		Code:    code,
		Message: field + " " + reason,
		Fields:  map[string]string{field: reason},
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithFields wraps a sentinel so that errors.Is still matches it while the
// response carries a per-request field map.
func WithFields(sentinel *AppError, fields map[string]string) *AppError {
	return &AppError{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Fields:  fields,
		Err:     sentinel,
	}
}

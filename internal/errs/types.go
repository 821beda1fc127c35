package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// ExternalServiceError covers failed calls to anything outside the process:
// the site origin, the comment endpoint, Vertex.
type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Status    int
	Transient bool
	Err       error
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// DecodeError means a resource body could not be decoded into the expected type.
type DecodeError struct {
	ErrorMessage
	Resource string
	Err      error
}

func (e *DecodeError) Unwrap() error { return e.Err }

type FileError struct {
	ErrorMessage
	Operation string
	Path      string
	Err       error
}

func (e *FileError) Unwrap() error { return e.Err }

type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewExternalServiceError(service string, status int, transient bool, err error) *ExternalServiceError {
	msg := fmt.Sprintf("%s request failed", service)
	switch {
	case status > 0 && err != nil:
		msg = fmt.Sprintf("%s returned status %d: %v", service, status, err)
	case status > 0:
		msg = fmt.Sprintf("%s returned status %d", service, status)
	case err != nil:
		msg = fmt.Sprintf("%s request failed: %v", service, err)
	}
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: msg},
		Service:      service,
		Status:       status,
		Transient:    transient,
		Err:          err,
	}
}

func NewDecodeError(resource string, err error) *DecodeError {
	return &DecodeError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("decode %s: %v", resource, err)},
		Resource:     resource,
		Err:          err,
	}
}

func NewFileError(operation, path string, err error) *FileError {
	return &FileError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s %s: %v", operation, path, err)},
		Operation:    operation,
		Path:         path,
		Err:          err,
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", message, err)},
		Operation:    operation,
		Err:          err,
	}
}

// IsTransientStatus reports whether an HTTP status is worth surfacing as a
// temporary outage rather than a hard failure.
func IsTransientStatus(status int) bool {
	return status == 408 || status == 429 || status >= 500
}

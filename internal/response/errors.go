package response

// ErrCode is a typed error code enum for consistent outcome identification.
type ErrCode string

const (
	// ─── Lookup ────────────────────────────────────────────────────────
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"
	ErrCourseNotFound  ErrCode = "COURSE_NOT_FOUND"

	// ─── Registration ──────────────────────────────────────────────────
	ErrCourseFull        ErrCode = "COURSE_FULL"
	ErrNotRegistered     ErrCode = "NOT_REGISTERED"
	ErrAlreadyRegistered ErrCode = "ALREADY_REGISTERED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation      ErrCode = "VALIDATION_ERROR"
	ErrInvalidCapacity ErrCode = "INVALID_CAPACITY"

	// ─── Internal ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a generic human-readable message for a given error code.
// Registry outcomes usually carry a more specific message built from the
// records involved.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrStudentNotFound:
		return "Student not found."
	case ErrCourseNotFound:
		return "Course not found."
	case ErrCourseFull:
		return "Course is full."
	case ErrNotRegistered:
		return "Student is not registered for this course."
	case ErrAlreadyRegistered:
		return "Student is already registered for this course."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidCapacity:
		return "Course capacity must not be negative."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}

// Error is a recoverable registry failure. Two errors are equal under
// errors.Is when their codes match, so sentinel values such as
// StudentNotFound can be used as match targets.
type Error struct {
	Code    ErrCode
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GetMessage(e.Code)
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ValidationError builds a VALIDATION_ERROR carrying field-level details.
// An empty message falls back to GetMessage.
func ValidationError(message string, fields map[string]string) *Error {
	if message == "" {
		message = GetMessage(ErrValidation)
	}
	return &Error{Code: ErrValidation, Message: message, Fields: fields}
}

// Sentinel match targets for errors.Is.
var (
	StudentNotFound   = &Error{Code: ErrStudentNotFound}
	CourseNotFound    = &Error{Code: ErrCourseNotFound}
	CourseFull        = &Error{Code: ErrCourseFull}
	NotRegistered     = &Error{Code: ErrNotRegistered}
	AlreadyRegistered = &Error{Code: ErrAlreadyRegistered}
	Validation        = &Error{Code: ErrValidation}
	InvalidCapacity   = &Error{Code: ErrInvalidCapacity}
)

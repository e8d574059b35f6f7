package domain

import "errors"

// Kind groups domain errors by how the user can correct them.
type Kind string

const (
	KindValidation Kind = "validation"
	KindCapacity   Kind = "capacity"
	KindDuplicate  Kind = "duplicate"
	KindTiming     Kind = "timing"
	KindRange      Kind = "range"
	KindNotFound   Kind = "not_found"
	KindForbidden  Kind = "forbidden"
)

// Error is an expected, user-correctable condition. Code is the stable
// identifier used to look up the user-facing message.
type Error struct {
	Code string
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(code string, kind Kind, msg string) *Error {
	return &Error{Code: code, Kind: kind, Msg: msg}
}

// Domain errors.
var (
	ErrMissingField      = newError("missing_field", KindValidation, "required field is missing")
	ErrInvalidEventType  = newError("invalid_event_type", KindValidation, "event type must be Workshop, Fest or Seminar")
	ErrInvalidCapacity   = newError("invalid_capacity", KindValidation, "max capacity must be a positive integer")
	ErrInvalidDate       = newError("invalid_date", KindValidation, "date must be formatted YYYY-MM-DD")
	ErrInvalidTime       = newError("invalid_time", KindValidation, "time must be formatted HH:MM")
	ErrInvalidStatus     = newError("invalid_status", KindValidation, "status must be upcoming, ongoing or completed")
	ErrEventNotFound     = newError("event_not_found", KindNotFound, "event not found")
	ErrStudentNotFound   = newError("student_not_found", KindNotFound, "student not found")
	ErrEventFull         = newError("event_full", KindCapacity, "event is full")
	ErrAlreadyRegistered = newError("already_registered", KindDuplicate, "already registered for this event")
	ErrNotEventDay       = newError("not_event_day", KindTiming, "attendance can only be marked on the event day")
	ErrEventClosed       = newError("event_closed", KindValidation, "registration is closed for completed events")
	ErrNotRegistered     = newError("not_registered", KindValidation, "not registered for this event")
	ErrAttendanceMarked  = newError("attendance_marked", KindDuplicate, "attendance already marked for this event")
	ErrInvalidRating     = newError("invalid_rating", KindRange, "rating must be between 1 and 5")
	ErrNotAttended       = newError("not_attended", KindValidation, "feedback is open to attendees only")
	ErrFeedbackExists    = newError("feedback_exists", KindDuplicate, "feedback already submitted for this event")
	ErrNotAdmin          = newError("not_admin", KindForbidden, "only administrators can perform this action")
)

// Code returns the domain error code carried by err, or "" when err is not
// (and does not wrap) a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// KindOf returns the kind of the domain error carried by err, or "".
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

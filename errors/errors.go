package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	GuestNameInvalid       = "Guest first and last name must not be empty or contain whitespace"
	RoomHasNilValue        = "Room has nil value"
	CommodityHasNilValue   = "Commodity has nil value"
	RoomHasNoCommodities   = "Room has no commodities"
	RoomCannotBeEmpty      = "Room can not be empty"
	DatesNotSet            = "Dates can not be nil"
	InvalidDateRange       = "From date can not be same as to date or be after to date"
	FromDateInPast         = "From date can not be in the past"
	PeopleCapacityMismatch = "Number of people must be equal to room capacity"
	RoomAlreadyBooked      = "Room is already booked for that period"
	NoAvailableRoom        = "No available room found for that period"
)

// Kind classifies a failure so the boundary layer can translate it
// into a protocol-appropriate response.
type Kind int

const (
	InvalidArgument Kind = iota
	NotFound
	AlreadyExists
	Conflict
	InvalidState
)

func (kind Kind) String() string {
	switch kind {
	case InvalidArgument:
		return "InvalidArgument"
	case NotFound:
		return "NotFound"
	case AlreadyExists:
		return "AlreadyExists"
	case Conflict:
		return "Conflict"
	case InvalidState:
		return "InvalidState"
	}
	return "Unknown"
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func isKind(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}

func IsInvalidArgument(err error) bool { return isKind(err, InvalidArgument) }

func IsNotFound(err error) bool { return isKind(err, NotFound) }

func IsAlreadyExists(err error) bool { return isKind(err, AlreadyExists) }

func IsConflict(err error) bool { return isKind(err, Conflict) }

func IsInvalidState(err error) bool { return isKind(err, InvalidState) }

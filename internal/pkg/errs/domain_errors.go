package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

type Kind string

const (
	KindNotFound                Kind = "NotFound"
	KindInvalidPayload          Kind = "InvalidPayload"
	KindPlayStationNotAvailable Kind = "PlayStationNotAvailable"
)

// DomainError is the error vocabulary returned by every fallible registry operation.
// Match a kind with errors.Is against the sentinels below.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// Is matches sentinels (message-less values) by kind only.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrNotFound                = &DomainError{Kind: KindNotFound}
	ErrInvalidPayload          = &DomainError{Kind: KindInvalidPayload}
	ErrPlayStationNotAvailable = &DomainError{Kind: KindPlayStationNotAvailable}
)

func NotFound(msg string) error {
	return cr.WithStackDepth(&DomainError{Kind: KindNotFound, Message: msg}, 1)
}

func InvalidPayload(msg string) error {
	return cr.WithStackDepth(&DomainError{Kind: KindInvalidPayload, Message: msg}, 1)
}

func PlayStationNotAvailable(msg string) error {
	return cr.WithStackDepth(&DomainError{Kind: KindPlayStationNotAvailable, Message: msg}, 1)
}

// AsDomain extracts the DomainError carried by err, if any.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Messages shared by the registries.
const (
	MsgRenterNotFound      = "Renter with that id doesn't exist"
	MsgGameNotFound        = "Game with that id doesn't exist"
	MsgPlayStationNotFound = "Playstation with that id doesn't exist"
	MsgRentLogNotFound     = "Rent Log with that id doesn't exist"

	MsgRenterPayload      = "Either the name or the contact info is missing!"
	MsgContactInfoMissing = "The contact info is missing!"
	MsgGamePayload        = "You must enter all the informations needed!"

	MsgPlayStationNotAvailable = "Playstation is not available for rent"
)

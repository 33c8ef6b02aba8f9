package renter

import (
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
)

// Renter is a person who can rent playstations. Renters are never deleted.
type Renter struct {
	id          ident.ID
	name        string
	contactInfo string
}

func NewRenter(id ident.ID, name, contactInfo string) (*Renter, error) {
	if name == "" || contactInfo == "" {
		return nil, errs.InvalidPayload(errs.MsgRenterPayload)
	}

	return &Renter{
		id:          id,
		name:        name,
		contactInfo: contactInfo,
	}, nil
}

func ReconstructRenter(id ident.ID, name, contactInfo string) *Renter {
	return &Renter{
		id:          id,
		name:        name,
		contactInfo: contactInfo,
	}
}

func (r *Renter) ChangeContactInfo(contactInfo string) error {
	if contactInfo == "" {
		return errs.InvalidPayload(errs.MsgContactInfoMissing)
	}
	r.contactInfo = contactInfo
	return nil
}

func (r *Renter) ID() ident.ID        { return r.id }
func (r *Renter) Name() string        { return r.name }
func (r *Renter) ContactInfo() string { return r.contactInfo }

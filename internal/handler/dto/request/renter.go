package request

import "console-rental/internal/usecase/commands"

// Presence is not enforced by binding tags: a missing field and an empty one
// both reach the domain and fail the same way.
type CreateRenterRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

type EditContactInfoRequest struct {
	ContactInfo string `json:"contactInfo"`
}

func (r CreateRenterRequest) ToCommand() commands.CreateRenterRequest {
	return commands.CreateRenterRequest{
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
	}
}

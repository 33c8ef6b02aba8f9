//go:build unit || e2e

package builder

import (
	"console-rental/internal/domain/renter"
	reqdto "console-rental/internal/handler/dto/request"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
)

type RenterBuilder struct {
	ID          ident.ID
	Name        string
	ContactInfo string
}

func NewRenterBuilder() *RenterBuilder {
	return &RenterBuilder{
		ID:          ident.NewRandomGenerator().Generate(),
		Name:        "Ada Lovelace",
		ContactInfo: "ada@example.com",
	}
}

func (r *RenterBuilder) With(mutate func(*RenterBuilder)) *RenterBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RenterBuilder) BuildDomain() (*renter.Renter, error) {
	return renter.NewRenter(r.ID, r.Name, r.ContactInfo)
}

func (r *RenterBuilder) BuildCreateRequestDTO() reqdto.CreateRenterRequest {
	return reqdto.CreateRenterRequest{
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
	}
}

func (r *RenterBuilder) BuildView() *queries.RenterView {
	return &queries.RenterView{
		ID:          r.ID.String(),
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
	}
}

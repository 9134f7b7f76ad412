//go:build unit || e2e

package builder

import (
	"firm-digest/internal/domain/recipient"

	"github.com/google/uuid"
)

type RecipientBuilder struct {
	ID       uuid.UUID
	FirmID   uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

func NewRecipientBuilder() *RecipientBuilder {
	return &RecipientBuilder{
		ID:       uuid.New(),
		FirmID:   uuid.New(),
		Name:     "Asha",
		Email:    "asha@acme.example",
		Role:     "staff",
		IsActive: true,
	}
}

func (r *RecipientBuilder) With(mutate func(*RecipientBuilder)) *RecipientBuilder {
	mutate(r)
	return r
}

func (r *RecipientBuilder) InFirm(id uuid.UUID) *RecipientBuilder {
	r.FirmID = id
	return r
}

func (r *RecipientBuilder) AsManager() *RecipientBuilder {
	r.Role = "manager"
	return r
}

// BuildDomain panics on invalid data; use recipient.New directly to test
// validation.
func (r *RecipientBuilder) BuildDomain() *recipient.Recipient {
	out, err := recipient.New(r.ID, r.FirmID, r.Name, r.Email, r.Role, r.IsActive)
	if err != nil {
		panic(err)
	}
	return out
}

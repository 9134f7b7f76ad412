package recipient

import (
	"strings"

	"github.com/google/uuid"
)

// Recipient is a staff member who receives digests.
type Recipient struct {
	id       uuid.UUID
	firmID   uuid.UUID
	name     string
	email    Email
	role     Role
	isActive bool
}

// New validates raw directory values. Directory rows that fail here are
// treated as permanent data errors by the delivery worker.
func New(id, firmID uuid.UUID, name, email, role string, isActive bool) (*Recipient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	r, err := NewRole(role)
	if err != nil {
		return nil, err
	}
	return &Recipient{
		id:       id,
		firmID:   firmID,
		name:     name,
		email:    addr,
		role:     r,
		isActive: isActive,
	}, nil
}

func (r *Recipient) ID() uuid.UUID     { return r.id }
func (r *Recipient) FirmID() uuid.UUID { return r.firmID }
func (r *Recipient) Name() string      { return r.name }
func (r *Recipient) Email() Email      { return r.email }
func (r *Recipient) Role() Role        { return r.role }
func (r *Recipient) IsActive() bool    { return r.isActive }

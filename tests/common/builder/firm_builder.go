//go:build unit || e2e

package builder

import (
	"firm-digest/internal/domain/firm"

	"github.com/google/uuid"
)

type FirmBuilder struct {
	ID       uuid.UUID
	Name     string
	TimeZone string
	IsActive bool
}

func NewFirmBuilder() *FirmBuilder {
	return &FirmBuilder{
		ID:       uuid.New(),
		Name:     "Acme Accounting",
		TimeZone: "Asia/Kolkata",
		IsActive: true,
	}
}

func (f *FirmBuilder) With(mutate func(*FirmBuilder)) *FirmBuilder {
	mutate(f)
	return f
}

func (f *FirmBuilder) BuildDomain() *firm.Firm {
	return firm.Reconstruct(f.ID, f.Name, f.TimeZone, f.IsActive)
}

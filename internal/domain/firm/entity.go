package firm

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Firm is read-only to this service; the directory owns it.
type Firm struct {
	id       uuid.UUID
	name     string
	timeZone string
	isActive bool
}

func Reconstruct(id uuid.UUID, name, timeZone string, isActive bool) *Firm {
	return &Firm{
		id:       id,
		name:     name,
		timeZone: strings.TrimSpace(timeZone),
		isActive: isActive,
	}
}

func (f *Firm) ID() uuid.UUID    { return f.id }
func (f *Firm) Name() string     { return f.name }
func (f *Firm) TimeZone() string { return f.timeZone }
func (f *Firm) IsActive() bool   { return f.isActive }

// Location resolves the firm's IANA zone. An empty or unknown zone yields
// fallback and ok=false so callers can report the misconfiguration.
func (f *Firm) Location(fallback *time.Location) (loc *time.Location, ok bool) {
	if f.timeZone == "" {
		return fallback, false
	}
	loc, err := time.LoadLocation(f.timeZone)
	if err != nil {
		return fallback, false
	}
	return loc, true
}

package readstore

import (
	"context"
	"log/slog"

	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/recipient"
	"firm-digest/internal/infra"
	"firm-digest/internal/infra/db"
	"firm-digest/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listActiveFirmsSQL = `
SELECT id, name, time_zone, is_active
FROM firms
WHERE is_active
ORDER BY name ASC, id ASC`

	findFirmByIDSQL = `
SELECT id, name, time_zone, is_active
FROM firms
WHERE id = @id`

	listActiveRecipientsSQL = `
SELECT id, firm_id, name, email, role, is_active
FROM staff_users
WHERE firm_id = @firm_id AND is_active
ORDER BY name ASC, id ASC`

	findRecipientByIDSQL = `
SELECT id, firm_id, name, email, role, is_active
FROM staff_users
WHERE id = @id`
)

type firmRow struct {
	ID       uuid.UUID   `db:"id"`
	Name     string      `db:"name"`
	TimeZone pgtype.Text `db:"time_zone"`
	IsActive bool        `db:"is_active"`
}

func (r firmRow) toDomain() *firm.Firm {
	return firm.Reconstruct(r.ID, r.Name, r.TimeZone.String, r.IsActive)
}

type recipientRow struct {
	ID       uuid.UUID `db:"id"`
	FirmID   uuid.UUID `db:"firm_id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Role     string    `db:"role"`
	IsActive bool      `db:"is_active"`
}

func (r recipientRow) toDomain() (*recipient.Recipient, error) {
	return recipient.New(r.ID, r.FirmID, r.Name, r.Email, r.Role, r.IsActive)
}

// DirectoryReadStore reads firms and staff owned by the practice-management
// application.
type DirectoryReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDirectoryReadStore(db db.DBTX, logger *slog.Logger) *DirectoryReadStore {
	return &DirectoryReadStore{db: db, logger: logger}
}

func (s *DirectoryReadStore) ActiveFirms(ctx context.Context) ([]*firm.Firm, error) {
	rows, err := s.db.Query(ctx, listActiveFirmsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active firms", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[firmRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan active firms", err)
	}

	out := make([]*firm.Firm, len(recs))
	for i, rec := range recs {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (s *DirectoryReadStore) FirmByID(ctx context.Context, id uuid.UUID) (*firm.Firm, error) {
	rows, err := s.db.Query(ctx, findFirmByIDSQL, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find firm", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[firmRow])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("firm not found", err, infra.KindNotFound), errs.ErrFirmNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan firm", err)
	}
	return rec.toDomain(), nil
}

// ActiveRecipients skips rows the domain rejects so one bad address does not
// block the rest of the firm.
func (s *DirectoryReadStore) ActiveRecipients(ctx context.Context, firmID uuid.UUID) ([]*recipient.Recipient, error) {
	rows, err := s.db.Query(ctx, listActiveRecipientsSQL, pgx.NamedArgs{"firm_id": firmID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active recipients", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[recipientRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan active recipients", err)
	}
	return buildRecipients(recs, s.logger), nil
}

func (s *DirectoryReadStore) RecipientByID(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	rows, err := s.db.Query(ctx, findRecipientByIDSQL, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recipient", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[recipientRow])
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("recipient not found", err, infra.KindNotFound), errs.ErrRecipientNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan recipient", err)
	}
	return rec.toDomain()
}

func buildRecipients(recs []recipientRow, logger *slog.Logger) []*recipient.Recipient {
	out := make([]*recipient.Recipient, 0, len(recs))
	for _, rec := range recs {
		r, err := rec.toDomain()
		if err != nil {
			logger.Warn("skipping invalid recipient",
				"recipient_id", rec.ID.String(),
				"firm_id", rec.FirmID.String(),
				"error", err,
			)
			continue
		}
		out = append(out, r)
	}
	return out
}

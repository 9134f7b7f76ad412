package sqlitestore

import (
	"context"
	"database/sql"
	"log/slog"

	"firm-digest/internal/domain/firm"
	"firm-digest/internal/domain/recipient"
	"firm-digest/internal/infra"
	"firm-digest/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	firmColumns      = `id, name, time_zone, is_active`
	recipientColumns = `id, firm_id, name, email, role, is_active`
)

type DirectoryReadStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewDirectoryReadStore(db *sql.DB, logger *slog.Logger) *DirectoryReadStore {
	return &DirectoryReadStore{db: db, logger: logger}
}

func (s *DirectoryReadStore) ActiveFirms(ctx context.Context) ([]*firm.Firm, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+firmColumns+` FROM firms WHERE is_active = 1 ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active firms", err)
	}
	defer rows.Close()

	var out []*firm.Firm
	for rows.Next() {
		f, err := scanFirm(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan active firm", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active firms", err)
	}
	return out, nil
}

func (s *DirectoryReadStore) FirmByID(ctx context.Context, id uuid.UUID) (*firm.Firm, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+firmColumns+` FROM firms WHERE id = :id`, sql.Named("id", id.String()))
	f, err := scanFirm(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("firm not found", err, infra.KindNotFound), errs.ErrFirmNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find firm", err)
	}
	return f, nil
}

func (s *DirectoryReadStore) ActiveRecipients(ctx context.Context, firmID uuid.UUID) ([]*recipient.Recipient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipientColumns+` FROM staff_users WHERE firm_id = :firm_id AND is_active = 1 ORDER BY name ASC, id ASC`,
		sql.Named("firm_id", firmID.String()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active recipients", err)
	}
	defer rows.Close()

	var out []*recipient.Recipient
	for rows.Next() {
		rec, err := scanRecipientRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan active recipient", err)
		}
		r, err := rec.toDomain()
		if err != nil {
			s.logger.Warn("skipping invalid recipient", "recipient_id", rec.id, "firm_id", rec.firmID, "error", err)
			continue
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active recipients", err)
	}
	return out, nil
}

func (s *DirectoryReadStore) RecipientByID(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recipientColumns+` FROM staff_users WHERE id = :id`, sql.Named("id", id.String()))
	rec, err := scanRecipientRow(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("recipient not found", err, infra.KindNotFound), errs.ErrRecipientNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find recipient", err)
	}
	return rec.toDomain()
}

func scanFirm(s scanner) (*firm.Firm, error) {
	var (
		id, name string
		timeZone sql.NullString
		active   bool
	)
	if err := s.Scan(&id, &name, &timeZone, &active); err != nil {
		return nil, err
	}
	fid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return firm.Reconstruct(fid, name, timeZone.String, active), nil
}

type recipientRow struct {
	id, firmID, name, email, role string
	active                        bool
}

func (r recipientRow) toDomain() (*recipient.Recipient, error) {
	id, err := uuid.Parse(r.id)
	if err != nil {
		return nil, err
	}
	firmID, err := uuid.Parse(r.firmID)
	if err != nil {
		return nil, err
	}
	return recipient.New(id, firmID, r.name, r.email, r.role, r.active)
}

func scanRecipientRow(s scanner) (recipientRow, error) {
	var r recipientRow
	err := s.Scan(&r.id, &r.firmID, &r.name, &r.email, &r.role, &r.active)
	return r, err
}

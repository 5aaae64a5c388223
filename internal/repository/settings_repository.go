package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const settingsColumns = `id, company_name, tagline, email, phone, address, facebook, instagram, twitter, linkedin, tiktok, whatsapp, created_at, updated_at`

// SettingsRepository handles the site settings singleton.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the settings row, or ErrNotFound when none has been created.
func (r *SettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	s := &model.Settings{}
	err := scanSettings(r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM settings LIMIT 1`), s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Upsert merges the non-nil patch fields into the singleton row, creating it
// on first write. Two concurrent first writes race at the storage layer;
// Get's LIMIT 1 keeps reads deterministic either way.
func (r *SettingsRepository) Upsert(ctx context.Context, p model.SettingsPatch) (*model.Settings, error) {
	s := &model.Settings{}
	err := scanSettings(r.pool.QueryRow(ctx,
		`UPDATE settings SET
			company_name = COALESCE($1, company_name),
			tagline      = COALESCE($2, tagline),
			email        = COALESCE($3, email),
			phone        = COALESCE($4, phone),
			address      = COALESCE($5, address),
			facebook     = COALESCE($6, facebook),
			instagram    = COALESCE($7, instagram),
			twitter      = COALESCE($8, twitter),
			linkedin     = COALESCE($9, linkedin),
			tiktok       = COALESCE($10, tiktok),
			whatsapp     = COALESCE($11, whatsapp),
			updated_at   = NOW()
		 WHERE id = (SELECT id FROM settings LIMIT 1)
		 RETURNING `+settingsColumns,
		p.CompanyName, p.Tagline, p.Email, p.Phone, p.Address, p.Facebook,
		p.Instagram, p.Twitter, p.LinkedIn, p.TikTok, p.WhatsApp,
	), s)
	if errors.Is(err, pgx.ErrNoRows) {
		err = scanSettings(r.pool.QueryRow(ctx,
			`INSERT INTO settings (company_name, tagline, email, phone, address, facebook, instagram, twitter, linkedin, tiktok, whatsapp)
			 VALUES (COALESCE($1, ''), COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
			         COALESCE($6, ''), COALESCE($7, ''), COALESCE($8, ''), COALESCE($9, ''), COALESCE($10, ''), COALESCE($11, ''))
			 RETURNING `+settingsColumns,
			p.CompanyName, p.Tagline, p.Email, p.Phone, p.Address, p.Facebook,
			p.Instagram, p.Twitter, p.LinkedIn, p.TikTok, p.WhatsApp,
		), s)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanSettings(row pgx.Row, s *model.Settings) error {
	return row.Scan(&s.ID, &s.CompanyName, &s.Tagline, &s.Email, &s.Phone, &s.Address,
		&s.Facebook, &s.Instagram, &s.Twitter, &s.LinkedIn, &s.TikTok, &s.WhatsApp,
		&s.CreatedAt, &s.UpdatedAt)
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everestwc/everest-backend/internal/model"
)

const appointmentColumns = `id, name, email, phone, preferred_date, preferred_time, message, status, created_at, updated_at`

// AppointmentRepository handles appointment data access.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository creates a new AppointmentRepository.
func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

// List returns every appointment regardless of status, newest first.
// Appointments have no visibility flag; the whole listing is admin-only.
func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// Create inserts a new appointment and fills in the generated fields.
func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO appointments (name, email, phone, preferred_date, preferred_time, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.Phone, a.PreferredDate, a.PreferredTime, a.Message, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update merges the non-nil patch fields into the row and returns the result.
// The name/fullName alias pair collapses into the name column.
func (r *AppointmentRepository) Update(ctx context.Context, id string, p model.AppointmentPatch) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := scanAppointment(r.pool.QueryRow(ctx,
		`UPDATE appointments SET
			name           = COALESCE($2, name),
			email          = COALESCE($3, email),
			phone          = COALESCE($4, phone),
			preferred_date = COALESCE($5, preferred_date),
			preferred_time = COALESCE($6, preferred_time),
			message        = COALESCE($7, message),
			status         = COALESCE($8, status),
			updated_at     = NOW()
		 WHERE id = $1
		 RETURNING `+appointmentColumns,
		id, p.ResolvedName(), p.Email, p.Phone, p.PreferredDate, p.PreferredTime, p.Message, p.Status,
	), a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete hard-removes an appointment. Deleting a missing ID is a no-op.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func scanAppointment(row pgx.Row, a *model.Appointment) error {
	return row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PreferredDate,
		&a.PreferredTime, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt)
}

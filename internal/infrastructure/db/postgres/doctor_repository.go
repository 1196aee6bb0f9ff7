package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

const doctorColumns = "doctor_id, name, specialization, email, phone"

type DoctorRepository struct {
	db Querier
}

func NewDoctorRepository(db Querier) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	rows, err := r.db.Query(ctx, "SELECT "+doctorColumns+" FROM doctors ORDER BY doctor_id")
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return scanDoctors(rows)
}

func (r *DoctorRepository) Search(ctx context.Context, f ports.DoctorFilter) ([]domain.Doctor, error) {
	sql := "SELECT " + doctorColumns + " FROM doctors WHERE 1=1"
	args := []any{}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		sql += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if f.Specialization != "" {
		args = append(args, "%"+f.Specialization+"%")
		sql += fmt.Sprintf(" AND specialization ILIKE $%d", len(args))
	}
	sql += " ORDER BY doctor_id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}
	return scanDoctors(rows)
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO doctors (name, specialization, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING doctor_id
	`, d.Name, d.Specialization, d.Email, d.Phone).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert doctor: %w", err)
	}
	return id, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id int, d *domain.Doctor) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE doctors
		SET name = $1, specialization = $2, email = $3, phone = $4
		WHERE doctor_id = $5
	`, d.Name, d.Specialization, d.Email, d.Phone, id)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM doctors WHERE doctor_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

func scanDoctors(rows pgx.Rows) ([]domain.Doctor, error) {
	defer rows.Close()

	doctors := []domain.Doctor{}
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Email, &d.Phone); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

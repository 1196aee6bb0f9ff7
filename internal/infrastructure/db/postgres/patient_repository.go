package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

const patientColumns = "patient_id, name, email, phone, date_of_birth, gender, address"

type PatientRepository struct {
	db Querier
}

func NewPatientRepository(db Querier) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	rows, err := r.db.Query(ctx, "SELECT "+patientColumns+" FROM patients ORDER BY patient_id")
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return scanPatients(rows)
}

// Search filters patients by any combination of name, email, and phone,
// each matched as a case-insensitive substring. The WHERE clause is built
// from placeholders only.
func (r *PatientRepository) Search(ctx context.Context, f ports.PatientFilter) ([]domain.Patient, error) {
	sql := "SELECT " + patientColumns + " FROM patients WHERE 1=1"
	args := []any{}

	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		sql += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		sql += fmt.Sprintf(" AND email ILIKE $%d", len(args))
	}
	if f.Phone != "" {
		args = append(args, "%"+f.Phone+"%")
		sql += fmt.Sprintf(" AND phone ILIKE $%d", len(args))
	}
	sql += " ORDER BY patient_id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	return scanPatients(rows)
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO patients (name, email, phone, date_of_birth, gender, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING patient_id
	`, p.Name, p.Email, p.Phone, p.DateOfBirth, p.Gender, p.Address).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert patient: %w", err)
	}
	return id, nil
}

func (r *PatientRepository) Update(ctx context.Context, id int, p *domain.Patient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE patients
		SET name = $1, email = $2, phone = $3, date_of_birth = $4, gender = $5, address = $6
		WHERE patient_id = $7
	`, p.Name, p.Email, p.Phone, p.DateOfBirth, p.Gender, p.Address, id)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *PatientRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM patients WHERE patient_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func scanPatients(rows pgx.Rows) ([]domain.Patient, error) {
	defer rows.Close()

	patients := []domain.Patient{}
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth, &p.Gender, &p.Address); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

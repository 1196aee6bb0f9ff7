package postgres

import (
	"context"
	"fmt"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

type RecordRepository struct {
	db Querier
}

func NewRecordRepository(db Querier) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT record_id, patient_id, doctor_id, diagnosis, prescription
		FROM medical_records ORDER BY record_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := []domain.MedicalRecord{}
	for rows.Next() {
		var rec domain.MedicalRecord
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.Diagnosis, &rec.Prescription); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *RecordRepository) Create(ctx context.Context, rec *domain.MedicalRecord) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, diagnosis, prescription)
		VALUES ($1, $2, $3, $4)
		RETURNING record_id
	`, rec.PatientID, rec.DoctorID, rec.Diagnosis, rec.Prescription).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

func (r *RecordRepository) Update(ctx context.Context, id int, diagnosis, prescription string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE medical_records SET diagnosis = $1, prescription = $2 WHERE record_id = $3
	`, diagnosis, prescription, id)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM medical_records WHERE record_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

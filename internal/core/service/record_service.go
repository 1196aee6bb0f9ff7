package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

// RecordService manages medical records.
type RecordService struct {
	repo ports.RecordRepository
	log  zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, log zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, log: log}
}

func (s *RecordService) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *RecordService) Create(ctx context.Context, r *domain.MedicalRecord) (int, error) {
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("record_id", id).Int("patient_id", r.PatientID).Msg("medical record added")
	return id, nil
}

func (s *RecordService) Update(ctx context.Context, id int, diagnosis, prescription string) error {
	return s.repo.Update(ctx, id, diagnosis, prescription)
}

func (s *RecordService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

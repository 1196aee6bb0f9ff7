package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

// PatientService manages patient records.
type PatientService struct {
	repo ports.PatientRepository
	log  zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, log zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, log: log}
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) Search(ctx context.Context, f ports.PatientFilter) ([]domain.Patient, error) {
	return s.repo.Search(ctx, f)
}

func (s *PatientService) Create(ctx context.Context, p *domain.Patient) (int, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("patient_id", id).Msg("patient added")
	return id, nil
}

func (s *PatientService) Update(ctx context.Context, id int, p *domain.Patient) error {
	return s.repo.Update(ctx, id, p)
}

func (s *PatientService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

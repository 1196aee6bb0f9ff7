package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

// DoctorService manages practitioner records.
type DoctorService struct {
	repo ports.DoctorRepository
	log  zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, log zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, log: log}
}

func (s *DoctorService) List(ctx context.Context) ([]domain.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *DoctorService) Search(ctx context.Context, f ports.DoctorFilter) ([]domain.Doctor, error) {
	return s.repo.Search(ctx, f)
}

func (s *DoctorService) Create(ctx context.Context, d *domain.Doctor) (int, error) {
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("doctor_id", id).Str("specialization", d.Specialization).Msg("doctor added")
	return id, nil
}

func (s *DoctorService) Update(ctx context.Context, id int, d *domain.Doctor) error {
	return s.repo.Update(ctx, id, d)
}

func (s *DoctorService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

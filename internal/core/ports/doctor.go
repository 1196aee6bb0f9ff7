package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// DoctorFilter narrows doctor searches; empty fields are ignored.
type DoctorFilter struct {
	Name           string
	Specialization string
}

type DoctorRepository interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	Search(ctx context.Context, f DoctorFilter) ([]domain.Doctor, error)
	Create(ctx context.Context, d *domain.Doctor) (int, error)
	Update(ctx context.Context, id int, d *domain.Doctor) error
	Delete(ctx context.Context, id int) error
}

type DoctorService interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	Search(ctx context.Context, f DoctorFilter) ([]domain.Doctor, error)
	Create(ctx context.Context, d *domain.Doctor) (int, error)
	Update(ctx context.Context, id int, d *domain.Doctor) error
	Delete(ctx context.Context, id int) error
}

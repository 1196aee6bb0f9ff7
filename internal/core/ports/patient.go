package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// PatientFilter narrows patient searches. Empty fields are ignored; set
// fields match as case-insensitive substrings.
type PatientFilter struct {
	Name  string
	Email string
	Phone string
}

type PatientRepository interface {
	List(ctx context.Context) ([]domain.Patient, error)
	Search(ctx context.Context, f PatientFilter) ([]domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) (int, error)
	Update(ctx context.Context, id int, p *domain.Patient) error
	Delete(ctx context.Context, id int) error
}

type PatientService interface {
	List(ctx context.Context) ([]domain.Patient, error)
	Search(ctx context.Context, f PatientFilter) ([]domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) (int, error)
	Update(ctx context.Context, id int, p *domain.Patient) error
	Delete(ctx context.Context, id int) error
}

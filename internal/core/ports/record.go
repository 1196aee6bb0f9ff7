package ports

import (
	"context"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

type RecordRepository interface {
	List(ctx context.Context) ([]domain.MedicalRecord, error)
	Create(ctx context.Context, r *domain.MedicalRecord) (int, error)
	Update(ctx context.Context, id int, diagnosis, prescription string) error
	Delete(ctx context.Context, id int) error
}

type RecordService interface {
	List(ctx context.Context) ([]domain.MedicalRecord, error)
	Create(ctx context.Context, r *domain.MedicalRecord) (int, error)
	Update(ctx context.Context, id int, diagnosis, prescription string) error
	Delete(ctx context.Context, id int) error
}

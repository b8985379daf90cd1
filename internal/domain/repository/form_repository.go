package repository

import (
	"context"

	"github.com/formgate/formgate/internal/domain/entity"
)

// FormRepository defines form-related database operations.
type FormRepository interface {
	Create(ctx context.Context, f *entity.Form) error
	List(ctx context.Context) ([]*entity.Form, error)
	GetByID(ctx context.Context, id string) (*entity.Form, error)
	Update(ctx context.Context, f *entity.Form) error
	Delete(ctx context.Context, id string) error
	CreateResponse(ctx context.Context, r *entity.FormResponse) error
	ListResponses(ctx context.Context, formID string) ([]*entity.FormResponse, error)
}

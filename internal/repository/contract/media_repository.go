package contract

import (
	"context"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	Update(ctx context.Context, media *entity.Media) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Media, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Media, error)
}

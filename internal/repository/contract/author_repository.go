package contract

import (
	"context"

	"newsroom-be/internal/entity"
	"newsroom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Author, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Author, error)
}

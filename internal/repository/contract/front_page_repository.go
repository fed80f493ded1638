package contract

import (
	"context"

	"newsroom-be/internal/entity"
)

// FrontPageRepository manages the singleton "Une" row.
type FrontPageRepository interface {
	Get(ctx context.Context) (*entity.FrontPage, error)
	Set(ctx context.Context, fp *entity.FrontPage) error
}

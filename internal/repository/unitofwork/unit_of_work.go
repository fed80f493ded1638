package unitofwork

import (
	"context"

	"newsroom-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ArticleRepository() contract.ArticleRepository
	AuthorRepository() contract.AuthorRepository
	CategoryRepository() contract.CategoryRepository
	MediaRepository() contract.MediaRepository
	FrontPageRepository() contract.FrontPageRepository
	UserRepository() contract.UserRepository
}

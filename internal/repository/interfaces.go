package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/flowmotion/pkg/entity"
)

type PageContextsRepositoryI interface {
	// Adds a page context of kind showing url
	Register(ctx context.Context, url, kind string) (*entity.PageContext, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PageContext, error)
	// Lists page contexts in registration order
	List(ctx context.Context) ([]*entity.PageContext, error)
	// Points context id at url
	Navigate(ctx context.Context, id uuid.UUID, url string) error
	// Brings context id to the front
	Focus(ctx context.Context, id uuid.UUID) error
	// Opens a new window at url and registers it
	Open(ctx context.Context, url string) (*entity.PageContext, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

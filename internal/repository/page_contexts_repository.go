package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/entity"
)

// Opener shows url in a new browser window.
type Opener func(url string) error

// PageContextsRepo keeps page contexts in memory, in registration order.
// Nothing survives a restart.
type PageContextsRepo struct {
	mu       sync.RWMutex
	contexts map[uuid.UUID]*entity.PageContext
	order    []uuid.UUID
	open     Opener
	now      func() time.Time
}

func NewPageContextsRepo(open Opener) *PageContextsRepo {
	if open == nil {
		open = func(string) error { return nil }
	}
	return &PageContextsRepo{
		contexts: make(map[uuid.UUID]*entity.PageContext),
		open:     open,
		now:      time.Now,
	}
}

// Register adds a context of the given kind. An empty kind is a window.
func (r *PageContextsRepo) Register(ctx context.Context, url, kind string) (*entity.PageContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if kind == "" {
		kind = entity.ContextKindWindow
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	pc := r.add(url, kind)
	cp := *pc
	return &cp, nil
}

func (r *PageContextsRepo) add(url, kind string) *entity.PageContext {
	pc := &entity.PageContext{
		ID:        uuid.New(),
		URL:       url,
		Kind:      kind,
		CreatedAt: r.now(),
	}
	r.contexts[pc.ID] = pc
	r.order = append(r.order, pc.ID)
	return pc
}

func (r *PageContextsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PageContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	pc, ok := r.contexts[id]
	if !ok {
		return nil, errorvalues.ErrPageContextNotFound
	}
	cp := *pc
	return &cp, nil
}

func (r *PageContextsRepo) List(ctx context.Context) ([]*entity.PageContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*entity.PageContext, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.contexts[id]
		res = append(res, &cp)
	}
	return res, nil
}

func (r *PageContextsRepo) Navigate(ctx context.Context, id uuid.UUID, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	pc, ok := r.contexts[id]
	if !ok {
		return errorvalues.ErrPageContextNotFound
	}
	pc.URL = url
	return nil
}

// Focus marks id as the only focused context.
func (r *PageContextsRepo) Focus(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contexts[id]; !ok {
		return errorvalues.ErrPageContextNotFound
	}
	r.focus(id)
	return nil
}

func (r *PageContextsRepo) focus(id uuid.UUID) {
	for cid, pc := range r.contexts {
		pc.Focused = cid == id
	}
}

// Open launches a new window at url and registers it as focused.
func (r *PageContextsRepo) Open(ctx context.Context, url string) (*entity.PageContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.open(url); err != nil {
		return nil, fmt.Errorf("opening window error: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	pc := r.add(url, entity.ContextKindWindow)
	r.focus(pc.ID)
	cp := *pc
	return &cp, nil
}

func (r *PageContextsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contexts[id]; !ok {
		return errorvalues.ErrPageContextNotFound
	}
	delete(r.contexts, id)
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

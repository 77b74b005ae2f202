package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

// セッション保存先。見つからなければ ErrNotFound。
type SessionStore interface {
	Load(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

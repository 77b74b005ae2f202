package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// レビューの保存・取得
type ReviewRepository interface {
	// 新しい順（ユーザー名付き）
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	FindByProductAndUser(ctx context.Context, productID, userID int64) (model.Review, error)
	// (product, user) が既にあれば ErrConflict
	Create(ctx context.Context, review model.Review) (model.Review, error)
	UpdateContent(ctx context.Context, reviewID int64, rating int, comment string) error
}

package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (model.Coupon, error)
	// times_used を +1
	IncrementTimesUsed(ctx context.Context, code string) error
}

package usecase

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ReviewUsecase struct {
	products repo.ProductRepository
	reviews  repo.ReviewRepository
}

func NewReviewUsecase(products repo.ProductRepository, reviews repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{products: products, reviews: reviews}
}

type ReviewInput struct {
	Rating  int
	Comment string
}

// Submit は (商品, ユーザー) ごとに1件。あれば上書き、無ければ作成。
// 作成したら true。
func (u *ReviewUsecase) Submit(ctx context.Context, userID, productID int64, in ReviewInput) (bool, error) {
	if userID <= 0 {
		return false, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Rating < model.MinRating || in.Rating > model.MaxRating {
		return false, NewHTTPError(http.StatusBadRequest, "invalid rating")
	}
	//空コメントは可。長さだけ見る
	comment := in.Comment
	if utf8.RuneCountInString(comment) > model.MaxCommentLength {
		return false, NewHTTPError(http.StatusBadRequest, "comment too long")
	}

	if productID <= 0 {
		return false, NewHTTPError(http.StatusNotFound, "not found")
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, NewHTTPError(http.StatusNotFound, "not found")
		}
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.upsert(ctx, userID, productID, in.Rating, comment)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *ReviewUsecase) upsert(ctx context.Context, userID, productID int64, rating int, comment string) (bool, error) {
	existing, err := u.reviews.FindByProductAndUser(ctx, productID, userID)
	if err == nil {
		return false, u.reviews.UpdateContent(ctx, existing.ID, rating, comment)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}

	_, err = u.reviews.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	})
	if errors.Is(err, repo.ErrConflict) {
		//同時に作られた。相手の行を上書きする
		existing, err := u.reviews.FindByProductAndUser(ctx, productID, userID)
		if err != nil {
			return false, err
		}
		return false, u.reviews.UpdateContent(ctx, existing.ID, rating, comment)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

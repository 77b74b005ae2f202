package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartUsecase_AddToCart_SnapshotsLine(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	vRepo := new(VariantRepoMock)
	uc := usecase.NewCartUsecase(pRepo, vRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Basic Tee", Price: decimal.RequireFromString("10")}, nil)
	vRepo.On("FindByID", mock.Anything, int64(10)).Return(model.ProductVariant{ID: 10, ProductID: 1, Size: model.SizeS, Color: model.ColorBlack}, nil)

	sess := model.NewSession("sid")
	err := uc.AddToCart(ctx, sess, 1, usecase.AddCartInput{VariantID: 10})
	assert.NoError(t, err)

	if assert.Equal(t, 1, sess.Cart.Len()) {
		l := sess.Cart.Lines[0]
		assert.Equal(t, "Basic Tee", l.ProductName)
		assert.Equal(t, "Small-Black", l.VariantText)
		assert.Equal(t, "10.00", l.Price)
		assert.Equal(t, int64(1), l.Quantity)
	}
	assert.True(t, sess.Modified())
}

// 同じvariantでも行はまとめない
func TestCartUsecase_AddToCart_SameVariantTwice(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	vRepo := new(VariantRepoMock)
	uc := usecase.NewCartUsecase(pRepo, vRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Basic Tee", Price: decimal.RequireFromString("10")}, nil)
	vRepo.On("FindByID", mock.Anything, int64(10)).Return(model.ProductVariant{ID: 10, ProductID: 1, Size: model.SizeS, Color: model.ColorBlack}, nil)

	sess := model.NewSession("sid")
	assert.NoError(t, uc.AddToCart(ctx, sess, 1, usecase.AddCartInput{VariantID: 10, Quantity: 2}))
	assert.NoError(t, uc.AddToCart(ctx, sess, 1, usecase.AddCartInput{VariantID: 10, Quantity: 1}))

	assert.Equal(t, 2, sess.Cart.Len())
	assert.Equal(t, "30.00", uc.View(sess).Total)
}

func TestCartUsecase_AddToCart_ProductNotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(pRepo, new(VariantRepoMock))
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{}, repo.ErrNotFound)

	sess := model.NewSession("sid")
	err := uc.AddToCart(context.Background(), sess, 1, usecase.AddCartInput{VariantID: 10})
	assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, 0, sess.Cart.Len())
	assert.False(t, sess.Modified())
}

func TestCartUsecase_AddToCart_VariantOfOtherProduct(t *testing.T) {
	pRepo := new(ProductRepoMock)
	vRepo := new(VariantRepoMock)
	uc := usecase.NewCartUsecase(pRepo, vRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: decimal.RequireFromString("10")}, nil)
	vRepo.On("FindByID", mock.Anything, int64(20)).Return(model.ProductVariant{ID: 20, ProductID: 2}, nil)

	sess := model.NewSession("sid")
	err := uc.AddToCart(context.Background(), sess, 1, usecase.AddCartInput{VariantID: 20})
	assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestCartUsecase_RemoveAndUpdate(t *testing.T) {
	uc := usecase.NewCartUsecase(new(ProductRepoMock), new(VariantRepoMock))

	sess := model.NewSession("sid")
	sess.Cart.Add(model.CartLine{ProductName: "A", Price: "10.00", Quantity: 2})
	sess.Cart.Add(model.CartLine{ProductName: "B", Price: "5.00", Quantity: 1})

	view := uc.View(sess)
	assert.Equal(t, "25.00", view.Total)
	assert.Equal(t, 2, view.CartCount)
	assert.Equal(t, "20.00", view.Items[0].Subtotal)

	//範囲外・0以下は何もしない
	uc.RemoveLine(sess, 5)
	uc.UpdateQuantity(sess, 0, 0)
	assert.False(t, sess.Modified())
	assert.Equal(t, "25.00", uc.View(sess).Total)

	uc.UpdateQuantity(sess, 1, 3)
	assert.Equal(t, "35.00", uc.View(sess).Total)

	uc.RemoveLine(sess, 0)
	assert.Equal(t, "15.00", uc.View(sess).Total)
	assert.True(t, sess.Modified())
}

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogUC() (*usecase.CatalogUsecase, *ProductRepoMock, *CategoryRepoMock, *VariantRepoMock, *ReviewRepoMock) {
	p := new(ProductRepoMock)
	c := new(CategoryRepoMock)
	v := new(VariantRepoMock)
	r := new(ReviewRepoMock)
	return usecase.NewCatalogUsecase(p, c, v, r), p, c, v, r
}

func TestCatalogUsecase_ListProducts_PassesFilters(t *testing.T) {
	ctx := context.Background()
	uc, pRepo, cRepo, _, _ := newCatalogUC()

	catID := int64(2)
	minPrice := decimal.RequireFromString("5")
	maxPrice := decimal.RequireFromString("20")

	want := repo.ProductListQuery{Search: "tee", CategoryID: &catID, MinPrice: &minPrice, MaxPrice: &maxPrice}
	pRepo.On("List", mock.Anything, want).Return([]model.Product{
		{ID: 1, Name: "Basic Tee", Price: decimal.RequireFromString("10"), CategoryID: 2, Category: model.Category{ID: 2, Name: "T-Shirts"}},
	}, nil)
	cRepo.On("List", mock.Anything).Return([]model.Category{{ID: 1, Name: "Caps"}, {ID: 2, Name: "T-Shirts"}}, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{
		Search:     "  tee ",
		CategoryID: &catID,
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
	})
	assert.NoError(t, err)
	if assert.Len(t, out.Products, 1) {
		assert.Equal(t, "10.00", out.Products[0].Price)
		assert.Equal(t, "T-Shirts", out.Products[0].CategoryName)
	}
	assert.Len(t, out.Categories, 2)

	pRepo.AssertExpectations(t)
	cRepo.AssertExpectations(t)
}

func TestCatalogUsecase_ListProducts_NoFilters(t *testing.T) {
	ctx := context.Background()
	uc, pRepo, cRepo, _, _ := newCatalogUC()

	pRepo.On("List", mock.Anything, repo.ProductListQuery{}).Return([]model.Product{}, nil)
	cRepo.On("List", mock.Anything).Return([]model.Category{}, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{})
	assert.NoError(t, err)
	assert.Empty(t, out.Products)
}

func TestCatalogUsecase_ListProducts_DBError(t *testing.T) {
	uc, pRepo, _, _, _ := newCatalogUC()
	pRepo.On("List", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assertHTTPStatus(t, err, http.StatusInternalServerError)
}

func TestCatalogUsecase_GetProductDetail_NotFound(t *testing.T) {
	uc, pRepo, _, _, _ := newCatalogUC()
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCatalogUsecase_GetProductDetail_Success(t *testing.T) {
	ctx := context.Background()
	uc, pRepo, _, vRepo, rRepo := newCatalogUC()

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Basic Tee", Price: decimal.RequireFromString("10.00")}, nil)
	vRepo.On("ListByProductID", mock.Anything, int64(1)).Return([]model.ProductVariant{
		{ID: 10, ProductID: 1, Size: model.SizeS, Color: model.ColorBlack, Stock: 3},
	}, nil)
	now := time.Now()
	rRepo.On("ListByProductID", mock.Anything, int64(1)).Return([]model.Review{
		{ID: 5, ProductID: 1, UserID: 2, User: model.User{ID: 2, Username: "alice"}, Rating: 4, Comment: "nice", CreatedAt: now},
	}, nil)

	out, err := uc.GetProductDetail(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Basic Tee", out.Product.Name)
	if assert.Len(t, out.Variants, 1) {
		assert.Equal(t, "Small-Black", out.Variants[0].Label)
	}
	if assert.Len(t, out.Reviews, 1) {
		assert.Equal(t, "alice", out.Reviews[0].Username)
		assert.Equal(t, 4, out.Reviews[0].Rating)
	}
}

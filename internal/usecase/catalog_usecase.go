package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type CatalogUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	variants   repo.VariantRepository
	reviews    repo.ReviewRepository
}

// DI
func NewCatalogUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	variants repo.VariantRepository,
	reviews repo.ReviewRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		products:   products,
		categories: categories,
		variants:   variants,
		reviews:    reviews,
	}
}

// GET /products/ の入力。nil は条件なし。
type ListProductsInput struct {
	Search     string
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ProductDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Image        string `json:"image"`
}

type ProductListOutput struct {
	Products    []ProductDTO     `json:"products"`
	Categories  []model.Category `json:"categories"`
	SearchQuery string           `json:"search_query"`
}

type VariantDTO struct {
	ID    int64       `json:"id"`
	Size  model.Size  `json:"size"`
	Color model.Color `json:"color"`
	Label string      `json:"label"`
	Stock int64       `json:"stock"`
}

type ReviewDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductDetailOutput struct {
	Product  ProductDTO   `json:"product"`
	Variants []VariantDTO `json:"variants"`
	Reviews  []ReviewDTO  `json:"reviews"`
}

// 絞り込みは全部AND。カテゴリ一覧は常に全件返す（絞り込みUI用）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	items, err := u.products.List(ctx, repo.ProductListQuery{
		Search:     strings.TrimSpace(in.Search),
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cats, err := u.categories.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductListOutput{
		Products:    make([]ProductDTO, 0, len(items)),
		Categories:  cats,
		SearchQuery: in.Search,
	}
	for _, p := range items {
		out.Products = append(out.Products, toProductDTO(p))
	}
	return out, nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	p, err := u.findProduct(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, err
	}

	variants, err := u.variants.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	reviews, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductDetailOutput{
		Product:  toProductDTO(p),
		Variants: make([]VariantDTO, 0, len(variants)),
		Reviews:  make([]ReviewDTO, 0, len(reviews)),
	}
	for _, v := range variants {
		out.Variants = append(out.Variants, VariantDTO{
			ID:    v.ID,
			Size:  v.Size,
			Color: v.Color,
			Label: v.Label(),
			Stock: v.Stock,
		})
	}
	for _, r := range reviews {
		out.Reviews = append(out.Reviews, ReviewDTO{
			ID:        r.ID,
			Username:  r.User.Username,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (u *CatalogUsecase) findProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func toProductDTO(p model.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        money(p.Price),
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		Image:        p.Image,
	}
}

// 表示用の小数2桁
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

package main

import (
	"fmt"
	"log"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedProduct struct {
	name        string
	description string
	price       string
}

// デモ用のカテゴリと商品
var catalog = map[string][]seedProduct{
	"T-Shirts": {
		{"Basic Tee", "Cotton crew neck tee", "10.00"},
		{"Graphic Tee", "Printed front graphic", "15.00"},
	},
	"Hoodies": {
		{"Zip Hoodie", "Fleece lined zip hoodie", "39.90"},
		{"Pullover Hoodie", "Heavyweight pullover", "34.50"},
	},
	"Caps": {
		{"Baseball Cap", "Adjustable strap", "12.00"},
	},
}

var (
	sizes  = []model.Size{model.SizeS, model.SizeM, model.SizeL, model.SizeXL}
	colors = []model.Color{model.ColorBlack, model.ColorWhite, model.ColorRed, model.ColorBlue}
)

func main() {
	config.LoadDotEnv(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	fmt.Println("Connected to database successfully!")

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := seedCatalog(tx); err != nil {
			return err
		}
		return seedCoupon(tx)
	})
	if err != nil {
		log.Fatal("Failed to seed:", err)
	}

	fmt.Println("Seeding completed!")
}

// 商品が1件でもあれば何もしない
func seedCatalog(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Products already exist, skipping catalog")
		return nil
	}

	for catName, products := range catalog {
		cat := model.Category{Name: catName}
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}

		for _, sp := range products {
			p := model.Product{
				Name:        sp.name,
				Description: sp.description,
				Price:       decimal.RequireFromString(sp.price),
				CategoryID:  cat.ID,
			}
			if err := tx.Omit("Category").Create(&p).Error; err != nil {
				return err
			}

			variants := make([]model.ProductVariant, 0, len(sizes)*len(colors))
			for _, s := range sizes {
				for _, c := range colors {
					variants = append(variants, model.ProductVariant{
						ProductID: p.ID,
						Size:      s,
						Color:     c,
						Stock:     20,
					})
				}
			}
			if err := tx.Omit(clause.Associations).Create(&variants).Error; err != nil {
				return err
			}
			fmt.Printf("Inserted product: %s (%d variants)\n", p.Name, len(variants))
		}
	}
	return nil
}

// CODE10: 10%オフ、1年間有効
func seedCoupon(tx *gorm.DB) error {
	now := time.Now()
	c := model.Coupon{
		Code:          "CODE10",
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     now.Add(-24 * time.Hour),
		ValidUntil:    now.AddDate(1, 0, 0),
		IsActive:      true,
		MaxUses:       100,
	}
	res := tx.Where(model.Coupon{Code: c.Code}).FirstOrCreate(&c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		fmt.Println("Inserted coupon: CODE10")
	}
	return nil
}

package main

import (
	"context"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/session"
	"storefront/internal/middleware"
	"storefront/internal/server"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	config.LoadDotEnv(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	//セッション保存先（Redis）
	rdb := session.NewClient(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}
	sessionStore := session.NewRedisStore(rdb)

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	couponRepo := infraRepo.NewCouponGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo, variantRepo, reviewRepo)
	cartUC := usecase.NewCartUsecase(productRepo, variantRepo)
	checkoutUC := usecase.NewCheckoutUsecase(couponRepo, txm, clock)
	orderUC := usecase.NewOrderUsecase(txm)
	reviewUC := usecase.NewReviewUsecase(productRepo, reviewRepo)
	registerUC := auth.NewRegisterUserUsecase(userRepo, validator.NewAccountValidator(userRepo), hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, idGen, clock)

	//Handler生成
	handlers := server.Handlers{
		Home:     handler.NewHomeHandler(),
		Products: handler.NewProductHandler(catalogUC, cartUC, reviewUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Orders:   handler.NewOrderHandler(orderUC),
		Account:  handler.NewAccountHandler(registerUC, loginUC, orderUC),
	}

	e := server.New(cfg, middleware.SessionConfig{
		Store:  sessionStore,
		IDGen:  idGen,
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	}, userRepo, handlers)

	//Server起動
	if err := server.Start(e, cfg.Addr()); err != nil {
		e.Logger.Fatal(err)
	}
}

package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	//.envはローカル開発用。無ければ環境変数のみで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductImage{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusHistory{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	variantRepo := infraRepo.NewVariantGormRepository(gormDB)
	imageRepo := infraRepo.NewImageGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, variantRepo, imageRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, variantRepo, productRepo, imageRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, variantRepo, imageRepo, orderItemRepo, inventoryRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo)

	//Handler生成
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	handler.NewProductHandler(productUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg)
	handler.NewOrderHandler(orderUC).RegisterRoutes(e, cfg)
	handler.NewAdminProductHandler(adminProductUC).RegisterRoutes(e, cfg)
	handler.NewAdminOrderHandler(adminOrderUC).RegisterRoutes(e, cfg)
	handler.NewAdminUserHandler(adminUserUC).RegisterRoutes(e, cfg)
	handler.NewAuthHandler(authUC).RegisterRoutes(e, cfg)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

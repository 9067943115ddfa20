package main

import (
	"log"
	"time"

	"kiosk/internal/config"
	"kiosk/internal/domain/model"
	"kiosk/internal/handler"
	"kiosk/internal/infra/db"
	infraRepo "kiosk/internal/infra/repository"
	"kiosk/internal/server"
	"kiosk/internal/usecase"
	"kiosk/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くても起動できる（本番は環境変数直渡し）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.MenuItem{},
		&model.CartItem{},
		&model.Order{},
		&model.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	menuItemRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Validator生成
	userValidator := validator.NewUserValidator(userRepo)
	categoryValidator := validator.NewCategoryValidator(categoryRepo)
	menuItemValidator := validator.NewMenuItemValidator(menuItemRepo, categoryRepo)
	cartItemValidator := validator.NewCartItemValidator(userRepo, menuItemRepo)
	orderValidator := validator.NewOrderValidator(userRepo)
	paymentValidator := validator.NewPaymentValidator()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, userValidator, issuer)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, categoryValidator)
	menuUC := usecase.NewMenuUsecase(menuItemRepo, menuItemValidator)
	cartUC := usecase.NewCartUsecase(cartItemRepo, menuItemRepo, cartItemValidator)
	checkoutUC := usecase.NewCheckoutUsecase(
		cartItemRepo, menuItemRepo, txManager,
		cartItemValidator, orderValidator, paymentValidator,
		cfg.RecheckAvailability,
	)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartItemRepo)

	//Handler生成・ルート登録
	e := server.New()
	handler.NewAuthHandler(authUC).RegisterRoutes(e)
	handler.NewMenuHandler(menuUC, categoryUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg)
	handler.NewOrderHandler(checkoutUC, orderUC).RegisterRoutes(e, cfg)
	handler.NewAdminMenuHandler(menuUC).RegisterRoutes(e, cfg)
	handler.NewAdminCategoryHandler(categoryUC).RegisterRoutes(e, cfg)
	handler.NewAdminOrderHandler(orderUC).RegisterRoutes(e, cfg)

	//Server起動
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/servusapp/servus-api/internal/application/auth"
	"github.com/servusapp/servus-api/internal/application/finance"
	"github.com/servusapp/servus-api/internal/application/orders"
	"github.com/servusapp/servus-api/internal/application/usecase"
	"github.com/servusapp/servus-api/internal/infrastructure/cloudinary"
	"github.com/servusapp/servus-api/internal/infrastructure/mail"
	infrapdf "github.com/servusapp/servus-api/internal/infrastructure/pdf"
	"github.com/servusapp/servus-api/internal/infrastructure/postgres"
	httpRouter "github.com/servusapp/servus-api/internal/interfaces/http"
	"github.com/servusapp/servus-api/pkg/config"
	"github.com/servusapp/servus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewAuthTokenRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	uploader := cloudinary.NewUploader(cfg.Media.CloudName, cfg.Media.UploadPreset)

	// SMTP_HOST vazio ativa o mailer de log (links impressos no console).
	var mailer auth.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP_HOST vazio: emails serão apenas logados")
		mailer = mail.NewLogMailer(log)
	}

	authUC := auth.NewUseCase(userRepo, tokenRepo, profileRepo, uploader, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo, uploader)

	createOrderUC := orders.NewCreateOrderUseCase(
		orderRepo, customerRepo, catalogRepo, profileRepo, log, cfg.Plan.FreeMonthlyLimit,
	)
	orderUC := orders.NewUseCase(orderRepo, uploader, cfg.Media.MaxPhotoKB)

	// PDF: documento imprimível da O.S. (logo, assinatura e fotos embutidos)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(uploader)
	orderPDFUC := orders.NewPDFUseCase(orderRepo, customerRepo, profileRepo, pdfGenerator)

	financeUC := finance.NewUseCase(orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // fotos de evidência via multipart
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		CustomerUC:      customerUC,
		CatalogUC:       catalogUC,
		ProfileUC:       profileUC,
		CreateOrderUC:   createOrderUC,
		OrderUC:         orderUC,
		OrderPDFUC:      orderPDFUC,
		FinanceUC:       financeUC,
		JWTSecret:       cfg.JWT.Secret,
		SupportWhatsApp: cfg.Plan.SupportWhatsApp,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swaggo/swag"

	appanalytics "github.com/jhoicas/homeexotica-crm/internal/application/analytics"
	"github.com/jhoicas/homeexotica-crm/internal/application/auth"
	"github.com/jhoicas/homeexotica-crm/internal/application/billing"
	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	infracache "github.com/jhoicas/homeexotica-crm/internal/infrastructure/cache"
	infraotp "github.com/jhoicas/homeexotica-crm/internal/infrastructure/otp"
	infrapdf "github.com/jhoicas/homeexotica-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/sheets"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/storage"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/supabase"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/whatsapp"
	httpRouter "github.com/jhoicas/homeexotica-crm/internal/interfaces/http"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
	"github.com/jhoicas/homeexotica-crm/pkg/logger"

	_ "github.com/jhoicas/homeexotica-crm/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("auth", cfg.Auth.Provider).
		Str("storage", cfg.Storage.Driver).
		Str("cache", cfg.Cache.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if applied, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	} else if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}

	// Redis: cache compartida y códigos OTP locales. Sin Redis todo queda en memoria.
	var redisClient *redis.Client
	if cfg.Cache.Driver == "redis" {
		redisClient, err = infracache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
	}
	queryCache := infracache.New(cfg.Cache, redisClient, log.Component("cache"))

	loc := cfg.App.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	customerRepo := postgres.NewCustomerRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	supa := supabase.NewClient(cfg.Supa)
	otpProvider := newOTPProvider(cfg, supa, pool, redisClient, log)
	objectStorage := newObjectStorage(cfg, supa)

	authUC := auth.NewAuthUseCase(otpProvider, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.DefaultCountryCode)

	crmLog := log.Component("crm")
	customerUC := crm.NewCustomerUseCase(customerRepo, followUpRepo, queryCache, crmLog).WithClock(clock)
	leadUC := crm.NewLeadUseCase(leadRepo, queryCache, crmLog).WithClock(clock)
	importUC := crm.NewLeadImportUseCase(
		sheets.NewReader(time.Duration(cfg.Import.FetchTimeoutSeconds)*time.Second),
		txRunner, queryCache, log.Component("import"),
	).WithClock(clock)
	followUpUC := crm.NewFollowUpUseCase(followUpRepo, queryCache, crmLog).WithClock(clock)
	documentUC := crm.NewDocumentUseCase(documentRepo, objectStorage, queryCache, crmLog).WithClock(clock)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, queryCache, log.Component("billing")).WithClock(clock)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator(), billing.Issuer{
		Name:  cfg.Brand.Name,
		Phone: cfg.Brand.Phone,
		Email: cfg.Brand.Email,
	})

	dashboardUC := appanalytics.NewDashboardUseCase(
		dashboardRepo, followUpRepo, leadRepo, queryCache, log.Component("dashboard"),
	).WithClock(clock)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.Import.MaxUploadMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Home Exotica CRM API",
	}))

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Type("json")
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Storage.Driver == "local" {
		app.Static(storage.FilesPrefix, cfg.Storage.LocalDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		LeadUC:      leadUC,
		ImportUC:    importUC,
		FollowUpUC:  followUpUC,
		DocumentUC:  documentUC,
		InvoiceUC:   invoiceUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newOTPProvider Supabase Auth o el proveedor local (bcrypt + WhatsApp vía Wati).
func newOTPProvider(cfg *config.Config, supa *supabase.Client, pool *pgxpool.Pool, redisClient *redis.Client, log *logger.Logger) ports.OTPProvider {
	if cfg.Auth.Provider == "supabase" {
		return supabase.NewAuthProvider(supa)
	}
	var store infraotp.CodeStore = infraotp.NewMemoryStore()
	if redisClient != nil {
		store = infraotp.NewRedisStore(redisClient)
	}
	return infraotp.NewProvider(
		store,
		whatsapp.NewWati(cfg.Wati),
		postgres.NewUserRepository(pool),
		time.Duration(cfg.Auth.OTPTTLMinutes)*time.Minute,
		log.Component("otp"),
	)
}

// newObjectStorage bucket de Supabase Storage o disco local servido en /files.
func newObjectStorage(cfg *config.Config, supa *supabase.Client) ports.ObjectStorage {
	if cfg.Storage.Driver == "supabase" {
		return supabase.NewStorage(supa, cfg.Storage.Bucket)
	}
	return storage.NewLocal(cfg.Storage.LocalDir, cfg.HTTP.PublicBaseURL)
}

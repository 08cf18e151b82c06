package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/config"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/sqlite"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/sqlite/repository"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/notify"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/routes"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/service"
	"github.com/thandap/great-looks-checkin-self/cmd/internal/utils/validators"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set; all privileged operations will be refused")
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	checkinRepo := repository.NewCheckInRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// Outbound notifications: asynq-backed when Redis is configured,
	// otherwise check-ins proceed without confirmations.
	notifier := setupNotifications(cfg)

	// Getting services
	authService := service.NewAuthService(cfg.AdminToken, cfg.SessionTTL)
	checkinService := service.NewCheckInService(checkinRepo, validate, notifier, authService)
	noteService := service.NewNoteService(noteRepo, checkinRepo, validate, authService)
	catalogService := service.NewCatalogService(catalogRepo, validate)
	inventoryService := service.NewInventoryService(inventoryRepo, validate)

	// Getting routes
	checkinRoutes := routes.NewCheckInDefault(checkinService)
	noteRoutes := routes.NewNoteDefault(noteService)
	catalogRoutes := routes.NewCatalogDefault(catalogService)
	inventoryRoutes := routes.NewInventoryDefault(inventoryService)
	adminRoutes := routes.NewAdminDefault(authService)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API running")
	})

	// Check-ins and the queue board
	e.POST("/checkin", checkinRoutes.CreateCheckIn)
	e.GET("/checkins", checkinRoutes.GetQueue)
	e.PUT("/checkins/:id/now-serving", checkinRoutes.MarkNowServing)
	e.PUT("/checkins/:id", checkinRoutes.MarkServed)
	e.PUT("/checkins/:id/cancel", checkinRoutes.Cancel)

	// Notes
	e.POST("/checkins/:id/stylist-notes", noteRoutes.AddNote)
	e.GET("/checkins/:id/stylist-notes", noteRoutes.GetNotesForCheckin)
	e.GET("/stylist-notes/:phone/:stylist", noteRoutes.GetNotes)

	// Catalog
	e.GET("/services", catalogRoutes.GetServices)
	e.GET("/stylists", catalogRoutes.GetStylists)

	// Admin surface
	e.POST("/admin/login", adminRoutes.Login)
	admin := e.Group("/admin", routes.RequireAdmin(authService))
	admin.GET("/stats", checkinRoutes.GetStats)
	admin.GET("/services", catalogRoutes.ListAllServices)
	admin.POST("/services", catalogRoutes.CreateService)
	admin.PUT("/services/:id", catalogRoutes.UpdateService)
	admin.DELETE("/services/:id", catalogRoutes.DeactivateService)
	admin.GET("/inventory", inventoryRoutes.ListItems)
	admin.POST("/inventory", inventoryRoutes.CreateItem)
	admin.PUT("/inventory/:id", inventoryRoutes.UpdateItem)
	admin.DELETE("/inventory/:id", inventoryRoutes.DeleteItem)

	err = e.Start(":" + cfg.Port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func setupNotifications(cfg config.Config) notify.Notifier {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR is not set; confirmation emails are disabled")
		return notify.NoopNotifier{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := notify.Ping(ctx, cfg.RedisAddr); err != nil {
		log.Warnf("notification backend unreachable at startup: %v", err)
	}

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	mailer := notify.NewMailer(cfg.MailProvider, cfg.MailWebhookToken, cfg.MailFrom)
	worker := notify.NewWorker(mailer, cfg.SalonName)
	go startMailWorker(redisOpt, worker)

	return notify.NewAsynqNotifier(asynq.NewClient(redisOpt))
}

func startMailWorker(redisOpt asynq.RedisClientOpt, worker *notify.Worker) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 3,
			"low":     1,
		},
	})

	if err := srv.Run(worker.Mux()); err != nil {
		log.Fatal("mail worker failed to start", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

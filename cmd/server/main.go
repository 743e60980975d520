package main

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/grafnet-dev/hotel-management-extension/internal/application"
	"github.com/grafnet-dev/hotel-management-extension/internal/config"
	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
	"github.com/grafnet-dev/hotel-management-extension/internal/email"
	"github.com/grafnet-dev/hotel-management-extension/internal/infrastructure/repository"
	handlers "github.com/grafnet-dev/hotel-management-extension/internal/interfaces/http"
	"github.com/grafnet-dev/hotel-management-extension/internal/scheduler"
	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// The reception core runs fine without a database; it then starts with
	// empty room and activity collections.
	var roomRepo domain.RoomRepository
	var activityRepo domain.ActivityRepository
	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Printf("Warning: database unavailable, starting with empty collections: %v", err)
	} else {
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Printf("Warning: database unreachable, starting with empty collections: %v", err)
		} else {
			roomRepo = repository.NewRoomRepository(db)
			activityRepo = repository.NewActivityRepository(db)
		}
	}

	store := application.NewStore(roomRepo, activityRepo)
	machine := application.NewStateMachine(store)
	planning := application.NewPlanningService(store)
	policeForms := application.NewPoliceFormService(store, machine)

	// Email Client
	if cfg.EmailConfigured() {
		emailClient, err := email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			log.Printf("Warning: Email client initialization failed: %v", err)
		} else {
			machine.SetNotifier(emailClient)
		}
	}

	// Initial load, current month window
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	store.Refresh(windowStart, windowStart.AddDate(0, 1, 0))

	// The store carries no locking. One gate serializes every command,
	// shared between the HTTP layer and the scheduler.
	var gate sync.Mutex

	staySched := scheduler.NewStayScheduler(store, machine, &gate)
	staySched.Start()
	defer staySched.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	limiter := application.NewRateLimiter(1*time.Minute, 120)
	app.Use(func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.IP())
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Next()
	})

	app.Use(func(c *fiber.Ctx) error {
		gate.Lock()
		defer gate.Unlock()
		return c.Next()
	})

	roomHandler := handlers.NewRoomHandler(store)
	clientHandler := handlers.NewClientHandler(store)
	bookingHandler := handlers.NewBookingHandler(store, machine)
	stayHandler := handlers.NewStayHandler(store, machine)
	pricingHandler := handlers.NewPricingHandler(store)
	planningHandler := handlers.NewPlanningHandler(planning)
	policeFormHandler := handlers.NewPoliceFormHandler(policeForms, store)

	api := app.Group("/api")

	rooms := api.Group("/rooms")
	rooms.Get("/", roomHandler.GetAllRooms)
	rooms.Get("/types", roomHandler.GetReservationTypes)
	rooms.Get("/activities", roomHandler.GetActivities)
	rooms.Post("/refresh", roomHandler.RefreshRooms)
	rooms.Get("/:id", roomHandler.GetRoomByID)

	clients := api.Group("/clients")
	clients.Post("/", clientHandler.CreateClient)
	clients.Get("/", clientHandler.GetAllClients)
	clients.Get("/:id", clientHandler.GetClientByID)
	clients.Delete("/:id", clientHandler.DeleteClient)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.CreateBooking)
	bookings.Get("/", bookingHandler.GetAllBookings)
	bookings.Get("/:id", bookingHandler.GetBookingByID)
	bookings.Patch("/:id/status", bookingHandler.UpdateBookingStatus)
	bookings.Post("/:id/stays", stayHandler.CreateStay)

	stays := api.Group("/stays")
	stays.Get("/", stayHandler.GetAllStays)
	stays.Get("/:id", stayHandler.GetStayByID)
	stays.Patch("/:id/status", stayHandler.UpdateStayStatus)
	stays.Post("/:id/checkin", stayHandler.CheckIn)
	stays.Post("/:id/checkout", stayHandler.CheckOut)
	stays.Post("/:id/cancel", stayHandler.Cancel)
	stays.Post("/:id/food-lines", stayHandler.AddFoodLine)
	stays.Post("/:id/event-lines", stayHandler.AddEventLine)
	stays.Post("/:id/service-lines", stayHandler.AddServiceLine)
	stays.Post("/:id/police-form", policeFormHandler.OpenForm)

	pricing := api.Group("/pricing")
	pricing.Post("/quote", pricingHandler.Quote)
	pricing.Get("/hour-request", pricingHandler.EvaluateHourRequest)

	planningRoutes := api.Group("/planning")
	planningRoutes.Get("/blocks", planningHandler.GetBlocks)
	planningRoutes.Get("/grid", planningHandler.GetDayGrid)
	planningRoutes.Get("/kpis", planningHandler.GetKPIs)

	policeFormRoutes := api.Group("/police-forms")
	policeFormRoutes.Get("/", policeFormHandler.GetAllForms)
	policeFormRoutes.Get("/:id", policeFormHandler.GetFormByID)
	policeFormRoutes.Post("/:id/validate", policeFormHandler.ValidateForm)
	policeFormRoutes.Post("/:id/archive", policeFormHandler.ArchiveForm)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

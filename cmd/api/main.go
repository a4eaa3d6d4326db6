package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estatecrm/internal/config"
	"estatecrm/internal/database"
	"estatecrm/internal/domain/activity"
	"estatecrm/internal/domain/agent"
	"estatecrm/internal/domain/auth"
	"estatecrm/internal/domain/booking"
	"estatecrm/internal/domain/client"
	"estatecrm/internal/domain/enquiry"
	"estatecrm/internal/domain/lead"
	"estatecrm/internal/domain/note"
	"estatecrm/internal/domain/notification"
	"estatecrm/internal/domain/property"
	"estatecrm/internal/domain/sale"
	"estatecrm/internal/middleware"
	jwtsvc "estatecrm/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// repositories
	agentRepo := agent.NewRepository(db)
	clientRepo := client.NewRepository(db)
	propertyRepo := property.NewRepository(db)
	enquiryRepo := enquiry.NewRepository(db)
	leadRepo := lead.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	saleRepo := sale.NewRepository(db)
	noteRepo := note.NewRepository(db)
	activityRepo := activity.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	// notifications feed the websocket hub and the persistent inbox
	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)

	authService := auth.NewService(agentRepo, j)
	agentService := agent.NewService(agentRepo)
	enquiryService := enquiry.NewService(enquiryRepo, agentRepo, noteRepo, activityRepo, notificationService)
	leadService := lead.NewService(leadRepo, agentRepo, clientRepo, noteRepo, activityRepo, notificationService)
	bookingService := booking.NewService(bookingRepo, clientRepo, propertyRepo, activityRepo, notificationService)
	saleService := sale.NewService(saleRepo, clientRepo, propertyRepo, activityRepo, notificationService)

	authHandler := auth.NewHandler(authService)
	agentHandler := agent.NewHandler(agentService)
	clientHandler := client.NewHandler(clientRepo)
	propertyHandler := property.NewHandler(propertyRepo)
	enquiryHandler := enquiry.NewHandler(enquiryService)
	leadHandler := lead.NewHandler(leadService)
	bookingHandler := booking.NewHandler(bookingService)
	saleHandler := sale.NewHandler(saleService)
	activityHandler := activity.NewHandler(activityRepo)
	notificationHandler := notification.NewHandler(notificationService, hub)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			agentHandler.RegisterRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			propertyHandler.RegisterRoutes(protected)
			enquiryHandler.RegisterRoutes(protected)
			leadHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			saleHandler.RegisterRoutes(protected)
			activityHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	log.Printf("listening on %s (%s)", cfg.Addr, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

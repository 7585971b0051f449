package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/agent"
	"github.com/lekithkishore/MINDLY/internal/assessment"
	"github.com/lekithkishore/MINDLY/internal/config"
	"github.com/lekithkishore/MINDLY/internal/database"
	"github.com/lekithkishore/MINDLY/internal/email"
	"github.com/lekithkishore/MINDLY/internal/handlers"
	"github.com/lekithkishore/MINDLY/internal/notify"
	"github.com/lekithkishore/MINDLY/internal/repository"
	"github.com/lekithkishore/MINDLY/internal/services"
	"github.com/lekithkishore/MINDLY/internal/ws"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, client *mongo.Client, log zerolog.Logger) {
	db := client.Database(cfg.MongoDB)

	appointmentRepo := repository.NewAppointmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	moodScoreRepo := repository.NewMoodScoreRepository(db)
	moodSampleRepo := repository.NewMoodSampleRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	escalationRepo := repository.NewEscalationRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	var sender email.Sender
	if cfg.EmailEnabled() {
		sender = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	hub := ws.NewHub(log)
	go hub.Run()

	notifier := notify.NewNotifier(sender, notificationRepo, userRepo, hub, log)

	appointmentService := services.NewAppointmentService(appointmentRepo, availabilityRepo, notifier, log)
	availabilityService := services.NewAvailabilityService(availabilityRepo)
	insightsService := services.NewInsightsService(appointmentRepo, moodScoreRepo, moodSampleRepo, conversationRepo, assessmentRepo, log)
	chatService := services.NewChatService(agent.NewRuleBasedAgent(), conversationRepo, log)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, log)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, log)
	insightsHandler := handlers.NewInsightsHandler(insightsService, log)
	notesHandler := handlers.NewNotesHandler(noteRepo, log)
	chatHandler := handlers.NewChatHandler(chatService, log)
	assessmentHandler := handlers.NewAssessmentHandler(assessment.NewStandardScorer(), assessmentRepo, log)
	escalationHandler := handlers.NewEscalationHandler(escalationRepo, log)
	analyticsHandler := handlers.NewAnalyticsHandler(conversationRepo, log)
	healthHandler := handlers.NewHealthHandler(database.NewHealthChecker(client))
	wsHandler := handlers.NewWSHandler(hub)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	counsellor := api.Group("/counsellor")
	counsellor.Get("/appointments", appointmentHandler.List)
	counsellor.Patch("/appointments/:id/start", appointmentHandler.Start)
	counsellor.Patch("/appointments/:id/complete", appointmentHandler.Complete)
	counsellor.Patch("/appointments/:id/status", appointmentHandler.UpdateStatus)
	counsellor.Patch("/appointments/:id/reschedule", appointmentHandler.Reschedule)
	counsellor.Delete("/appointments/:id", appointmentHandler.Delete)
	counsellor.Get("/appointments/:id/insights", insightsHandler.Get)
	counsellor.Get("/appointments/:id/notes/:counsellorId", notesHandler.Get)
	counsellor.Put("/appointments/:id/notes/:counsellorId", notesHandler.Put)
	counsellor.Post("/availability/slot", availabilityHandler.UpsertSlot)
	counsellor.Patch("/availability/toggle", availabilityHandler.ToggleActive)
	counsellor.Get("/availability", availabilityHandler.List)

	api.Post("/chat", chatHandler.Chat)
	api.Post("/assessment/phq9", assessmentHandler.PHQ9)
	api.Post("/assessment/gad7", assessmentHandler.GAD7)
	api.Post("/escalation", escalationHandler.Create)
	api.Get("/analytics/sentiment-trends", analyticsHandler.SentimentTrends)

	api.Use("/ws", wsHandler.Upgrade)
	api.Get("/ws", websocket.New(wsHandler.Stream))
}

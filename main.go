package main

import (
	"context"
	"log"

	api "teamhub-backend/cmd/api"
	alertdomain "teamhub-backend/internal/alert/domain"
	alertGenerator "teamhub-backend/internal/alert/generator"
	alertRepo "teamhub-backend/internal/alert/repository"
	alertUsecase "teamhub-backend/internal/alert/usecase"
	"teamhub-backend/internal/audit"
	reminderdomain "teamhub-backend/internal/reminder/domain"
	reminderRepo "teamhub-backend/internal/reminder/repository"
	reminderUsecase "teamhub-backend/internal/reminder/usecase"
	"teamhub-backend/pkg/clock"
	"teamhub-backend/pkg/config"
	"teamhub-backend/pkg/database"
	"teamhub-backend/pkg/events"
	"teamhub-backend/pkg/fcm"
)

// fcmNotifier adapts the FCM client to the alert usecase Notifier interface
type fcmNotifier struct {
	client *fcm.Client
	topic  string
}

func (n *fcmNotifier) Send(ctx context.Context, title, body string) error {
	return n.client.SendToTopic(ctx, n.topic, fcm.NotificationData{
		Title: title,
		Body:  body,
	})
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&reminderdomain.ScheduledItem{}, &alertdomain.Alert{}, &reminderRepo.Project{}, &audit.Entry{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	itemRepository := reminderRepo.NewGormItemRepository(db)
	projectDirectory := reminderRepo.NewGormProjectDirectory(db)
	alertRepository := alertRepo.NewGormAlertRepository(db)
	auditSink := audit.NewGormSink(db)

	clk := clock.New()

	// Initialize FCM client (optional, alert pushes work without it)
	var notifier alertUsecase.Notifier
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		} else {
			notifier = &fcmNotifier{client: fcmClient, topic: cfg.FCMTopic}
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize alert event publisher (optional)
	var publisher *events.Publisher
	if cfg.GoogleProjectID != "" {
		publisher, err = events.NewPublisher(context.Background(), cfg.GoogleProjectID, cfg.GooglePubSubTopic, cfg.GoogleCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize event publisher (events disabled): %v", err)
		} else {
			defer publisher.Close()
		}
	} else {
		log.Println("[WARN] GoogleProjectID not configured, event publishing disabled")
	}

	// Initialize use cases (dependency injection)
	projectCache := reminderUsecase.NewDefaultProjectCache(projectDirectory)
	alertUsecaseInstance := alertUsecase.NewAlertUsecase(alertRepository, auditSink, notifier, publisher, clk)
	reminderUsecaseInstance := reminderUsecase.NewReminderUsecase(itemRepository, alertRepository, projectCache, auditSink, publisher, clk)

	// Start the alert generator
	gen := alertGenerator.New(itemRepository, alertRepository, clk, cfg.AlertScanInterval)
	gen.Start(context.Background())
	defer gen.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(reminderUsecaseInstance, alertUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

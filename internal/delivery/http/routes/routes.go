package routes

import (
	"log"

	"linkup/internal/config"
	"linkup/internal/database"
	"linkup/internal/delivery/http/handler"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/infrastructure/ai"
	persistence "linkup/internal/infrastructure/persistence/postgres"
	"linkup/internal/pkg/jwt"
	"linkup/internal/repository"
	"linkup/internal/usecase"
	"linkup/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler

	feed            *handler.FeedHandler
	posts           *handler.PostHandler
	jobs            *handler.JobHandler
	recommendations *handler.RecommendationHandler
	messages        *handler.MessageHandler
	uploads         *handler.UploadHandler
	wsHandler       *ws.Handler

	authMw *middleware.AuthMiddleware
}

// NewRegistry wires repositories, usecases and handlers. The cache may be
// nil (caching disabled) and the hub may be nil (no realtime events).
func NewRegistry(cfg config.Config, db database.DB, cache usecase.SearchCache, hub *ws.Hub, logger *log.Logger) (*Registry, error) {
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo, err := persistence.NewProfileRepository(db)
	if err != nil {
		return nil, err
	}

	postRepo := repository.NewPostgresPostRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	connectionRepo := repository.NewPostgresConnectionRepository(db)
	messageRepo := repository.NewPostgresMessageRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)

	// Nil when no API key is configured; recommendations then use the
	// static fallback.
	aiClient := ai.NewPerplexityClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, logger)

	feedUC := usecase.NewFeedUsecase(postRepo, connectionRepo)
	postUC := usecase.NewPostUsecase(postRepo)
	jobSearchUC := usecase.NewJobSearchUsecase(jobRepo, cache, logger)
	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, jobRepo, companyRepo, aiClient, logger)

	var notifier usecase.ConversationNotifier
	if hub != nil {
		notifier = hub
	}
	messageUC := usecase.NewMessageUsecase(messageRepo, notifier)
	uploadUC := usecase.NewUploadUsecase(cfg.Storage.PublicBaseURL)

	return &Registry{
		health:          handler.NewHealthHandler(),
		feed:            handler.NewFeedHandler(feedUC),
		posts:           handler.NewPostHandler(postUC),
		jobs:            handler.NewJobHandler(jobSearchUC),
		recommendations: handler.NewRecommendationHandler(recommendationUC),
		messages:        handler.NewMessageHandler(messageUC),
		uploads:         handler.NewUploadHandler(uploadUC),
		wsHandler:       ws.NewHandler(hub, logger),
		authMw:          authMw,
	}, nil
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api", r.authMw.Middleware())

	r.feed.RegisterRoutes(api)
	r.posts.RegisterRoutes(api)
	r.jobs.RegisterRoutes(api)
	r.recommendations.RegisterRoutes(api)
	r.messages.RegisterRoutes(api)
	r.uploads.RegisterRoutes(api)

	api.Get("/ws/conversations", r.wsHandler.HandleConversationsWS)
}

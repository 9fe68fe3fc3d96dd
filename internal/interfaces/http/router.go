package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	feedusecases "revu/internal/application/feed/usecases"
	followusecases "revu/internal/application/follow/usecases"
	reviewusecases "revu/internal/application/review/usecases"
	ticketusecases "revu/internal/application/ticket/usecases"
	userusecases "revu/internal/application/user/usecases"
	"revu/internal/domain/user"
	"revu/internal/infrastructure/auth"
	"revu/internal/infrastructure/config"
	"revu/internal/infrastructure/imaging"
	"revu/internal/infrastructure/ratelimit"
	"revu/internal/infrastructure/repository"
	"revu/internal/infrastructure/storage"
	"revu/internal/interfaces/http/handlers"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/interfaces/http/routes"
	"revu/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	ticketHandler  *handlers.TicketHandler
	reviewHandler  *handlers.ReviewHandler
	followHandler  *handlers.FollowHandler
	feedHandler    *handlers.FeedHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      gin.HandlerFunc
}

// NewRouter builds the full dependency graph for the HTTP interface.
// redisClient may be nil, in which case login and signup run unthrottled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	registerUsernameValidator()

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	reviewRepo := repository.NewReviewRepository(db, log)
	followRepo := repository.NewFollowRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	normalizer := imaging.NewNormalizer(log)
	blobs, err := storage.NewLocalBlobStore(cfg.Storage.MediaDir, log)
	if err != nil {
		return nil, err
	}

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, jwtService, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, normalizer, blobs, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, normalizer, blobs, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, blobs, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, reviewRepo, log)

	createReviewUC := reviewusecases.NewCreateReviewUseCase(reviewRepo, ticketRepo, log)
	createReviewWithTicketUC := reviewusecases.NewCreateReviewWithTicketUseCase(createTicketUC, reviewRepo, log)
	updateReviewUC := reviewusecases.NewUpdateReviewUseCase(reviewRepo, log)
	deleteReviewUC := reviewusecases.NewDeleteReviewUseCase(reviewRepo, log)

	followUserUC := followusecases.NewFollowUserUseCase(followRepo, userRepo, log)
	unfollowUserUC := followusecases.NewUnfollowUserUseCase(followRepo, log)
	listFollowsUC := followusecases.NewListFollowsUseCase(followRepo, userRepo, log)

	activityFeedUC := feedusecases.NewGetActivityFeedUseCase(ticketRepo, reviewRepo, followRepo, userRepo, log)
	ownPostsUC := feedusecases.NewGetOwnPostsUseCase(ticketRepo, reviewRepo, userRepo, log)

	rateLimitHandler := noopHandler()
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(
			redisClient,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		rateLimitHandler = middleware.RateLimit(limiter, log)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authHandler:    handlers.NewAuthHandler(registerUC, loginUC, log),
		userHandler:    handlers.NewUserHandler(listUsersUC, log),
		ticketHandler:  handlers.NewTicketHandler(createTicketUC, updateTicketUC, deleteTicketUC, getTicketUC, log),
		reviewHandler:  handlers.NewReviewHandler(createReviewUC, createReviewWithTicketUC, updateReviewUC, deleteReviewUC, log),
		followHandler:  handlers.NewFollowHandler(followUserUC, unfollowUserUC, listFollowsUC, log),
		feedHandler:    handlers.NewFeedHandler(activityFeedUC, ownPostsUC, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimit:      rateLimitHandler,
	}, nil
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimit:   r.rateLimit,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.feedHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFollowRoutes(r.engine, &routes.FollowRouteConfig{
		FollowHandler:  r.followHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// registerUsernameValidator hooks the domain username rules into gin's
// binding validator so request structs can use the "username" tag.
func registerUsernameValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return user.ValidateUsername(fl.Field().String()) == nil
		})
	}
}

func noopHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

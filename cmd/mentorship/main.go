package main

import (
	"context"
	"crypto/rsa"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/application/auth"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/message"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/ports"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/project"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/suggest"
	"github.com/Ananya01-bliss/new-student-mentor/internal/application/user"
	"github.com/Ananya01-bliss/new-student-mentor/internal/config"
	infraauth "github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/auth"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/cache"
	httprouter "github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/handlers"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/lockout"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/mq"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/notify"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/memory"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/persistence/postgres"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/queue"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/realtime"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/security"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/storage"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/webhook"
)

const (
	apiVersion    = "1"
	uploadsPrefix = "/uploads"
)

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Server.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	log := newLogger(cfg)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		pool     *pgxpool.Pool
		users    ports.UserRepository
		projects ports.ProjectRepository
		messages ports.MessageRepository
	)
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to database")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping database")
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		users = postgres.NewUserRepository(pool)
		projects = postgres.NewProjectRepository(pool)
		messages = postgres.NewMessageRepository(pool)
	} else {
		log.Warn().Msg("DATABASE_URL not set; using in-memory repositories")
		users = memory.NewUserRepository()
		projects = memory.NewProjectRepository()
		messages = memory.NewMessageRepository()
	}

	var redisClient *redis.Client
	var redisOpt *redis.Options
	if cfg.Redis.URL != "" {
		redisOpt, err = redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(redisOpt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	// Realtime: a local hub, relayed across instances through Redis pub/sub.
	hub := realtime.NewHub()
	var registry ports.ConnectionRegistry = hub
	if redisClient != nil {
		relay := realtime.NewRedisRelay(hub, redisClient, log)
		go func() {
			if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Msg("realtime relay stopped")
			}
		}()
		registry = relay
	}

	// Delivery channels run behind the queue; each one is optional except realtime.
	deliver := notify.Fanout{notify.NewRealtime(registry)}
	if cfg.Notify.WebhookURL != "" {
		deliver = append(deliver, webhook.NewHTTPEmitter(cfg.Notify.WebhookURL))
	}
	if cfg.Notify.AMQPURL != "" {
		pub, err := mq.NewPublisher(cfg.Notify.AMQPURL)
		if err != nil {
			log.Warn().Err(err).Msg("amqp unavailable; notifications will not be published to the broker")
		} else {
			defer pub.Close()
			deliver = append(deliver, pub)
		}
	}

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, deliver, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewInlineEnqueuer(deliver)
	}
	sink := notify.NewDispatcher(taskEnqueuer, log)

	var mentorPool ports.MentorPool = users
	var mentorsChanged func(context.Context)
	if redisClient != nil {
		cached := cache.NewMentorPool(users, redisClient, cfg.Suggestions.MentorCacheTTL, log)
		mentorPool = cached
		mentorsChanged = cached.Invalidate
	}

	var loginLockout ports.LoginLockoutStore
	if redisClient != nil {
		loginLockout = lockout.NewRedisStore(redisClient, cfg.Lockout.MaxAttempts, cfg.Lockout.CooldownSeconds, log)
	} else {
		loginLockout = lockout.NewMemoryStore(cfg.Lockout.MaxAttempts, cfg.Lockout.CooldownSeconds)
	}

	var files ports.FileStore
	var uploads http.Handler
	if cfg.Storage.GCSBucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.Storage.GCSBucket)
		if err != nil {
			log.Fatal().Err(err).Msg("create GCS client")
		}
		defer gcs.Close()
		files = gcs
	} else {
		local, err := storage.NewLocalStore(cfg.Storage.UploadDir, uploadsPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("create upload dir")
		}
		files = local
		uploads = http.FileServer(http.Dir(local.Dir()))
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	var privateKey *rsa.PrivateKey
	if pemBytes == nil {
		log.Warn().Msg("JWT_PRIVATE_KEY_PATH not set; tokens are signed with an ephemeral key")
		privateKey, err = infraauth.GenerateRSAKey()
	} else {
		privateKey, err = infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("prepare JWT private key")
	}
	issuer := infraauth.NewTokenIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	loginUC := auth.NewLogin(users, hasher, issuer, loginLockout, cfg.JWT.AccessExpiry)
	registerUC := auth.NewRegisterUser(users, hasher, loginUC, mentorsChanged)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	userLimit, err := middleware.NewUserRateLimiter(cfg.RateLimit.RatePerUser)
	if err != nil {
		log.Fatal().Err(err).Msg("create user rate limiter")
	}

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:   handlers.NewAuthHandler(registerUC, loginUC, log),
		HealthHandler: handlers.NewHealthHandler(pool, redisClient),
		UsersHandler:  handlers.NewUsersHandler(user.NewDirectory(users, mentorPool), log),
		ProjectsHandler: handlers.NewProjectsHandler(handlers.ProjectUseCases{
			Create:     project.NewCreateProject(projects, users, sink),
			Update:     project.NewUpdateProject(projects, users, sink),
			Delete:     project.NewDeleteProject(projects),
			Request:    project.NewRequestMentorship(projects, users, sink),
			Respond:    project.NewRespondToRequest(projects, users, sink),
			Complete:   project.NewCompleteMentorship(projects, sink),
			Queries:    project.NewQueries(projects, users),
			Suggestion: suggest.NewForProject(projects, mentorPool, cfg.Suggestions.Limit),
		}, log),
		MilestonesHandler: handlers.NewMilestonesHandler(
			project.NewAddMilestone(projects, sink),
			project.NewSubmitMilestone(projects, sink),
			project.NewCancelSubmission(projects),
			project.NewEvaluateMilestone(projects, sink),
			files, log),
		SuggestionsHandler: handlers.NewSuggestionsHandler(suggest.NewByKeywords(mentorPool, cfg.Suggestions.Limit), log),
		MessagesHandler: handlers.NewMessagesHandler(
			message.NewSendMessage(messages, users, registry, sink),
			message.NewInbox(messages, users), log),
		EventsHandler: handlers.NewEventsHandler(registry, log),
		RequireJWT:    middleware.NewAuthValidator(issuer).Handler,
		Log:           log,
		Secure:        middleware.NewSecure(middleware.SecureOptions(cfg.Server.IsDevelopment())),
		CORS:          middleware.CORS(cfg.Server.CORSOrigins),
		IPRateLimit:   ipLimit,
		UserRateLimit: userLimit,
		Uploads:       uploads,
		UploadsPrefix: uploadsPrefix,
		APIVersion:    apiVersion,
		Metrics:       true,
	})

	// No WriteTimeout: /events streams stay open until ctx is cancelled.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Bool("postgres", pool != nil).Bool("redis", redisClient != nil).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}

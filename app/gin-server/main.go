package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Kalashsatyapal/speech-to-text-backend/config"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/api/handlers"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/api/middleware"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/api/routes"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/cache"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/logger"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/providers/stt"
	mongorepo "github.com/Kalashsatyapal/speech-to-text-backend/internal/repositories/mongo"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/services"
	"github.com/Kalashsatyapal/speech-to-text-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New()
	ctx := context.Background()

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store init error: %v", err)
	}

	provider := stt.NewAssemblyAI(cfg.AssemblyAIAPIKey)

	// Persistence is optional: without MONGO_URI every transcript is
	// returned to the caller and then forgotten.
	transcripts := mongorepo.NewNoopTranscriptRepo()
	if cfg.PersistenceEnabled() {
		client, err := config.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		defer func() { _ = client.Disconnect(ctx) }()

		if err := config.EnsureMongoIndexes(client, cfg.MongoDB); err != nil {
			log.Fatalf("MongoDB index error: %v", err)
		}
		transcripts = mongorepo.NewTranscriptRepo(client.Database(cfg.MongoDB))
		l.Info("MongoDB connected")
	}

	var transcriptCache cache.TranscriptCache
	if cfg.CacheEnabled() {
		rdb, err := config.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		defer func() { _ = rdb.Close() }()

		transcriptCache = cache.NewRedisCache(rdb)
		l.Info("Redis connected")
	}

	svc := services.NewTranscriptionService(provider, store, transcripts, transcriptCache, l, services.Options{
		PollInterval: cfg.PollInterval,
		PollTimeout:  cfg.PollTimeout,
		CacheTTL:     cfg.CacheTTL,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Transcribe: handlers.NewTranscribeHandler(svc, store),
	})

	l.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"selectra/internal/cache"
	"selectra/internal/config"
	"selectra/internal/logger"
	"selectra/internal/repository"
	"selectra/internal/rubric"
	"selectra/internal/scoring"
	"selectra/internal/service"
	"selectra/internal/transport/rest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interview scoring HTTP server",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("loading config", zap.Error(err))
	}

	zlog.Info("starting selectra",
		zap.String("version", version),
		zap.String("session_backend", cfg.Sessions.Backend),
		zap.String("question_source", cfg.Questions.Source),
	)

	sessions := buildSessionStore(ctx, cfg, zlog)
	questions := buildQuestionRepo(ctx, cfg, zlog)

	engine := scoring.NewEngine(rubric.Default())
	evalSvc := service.NewEvaluationService(questions, sessions, engine, zlog)
	reportSvc := service.NewReportService(sessions, zlog)

	router := rest.NewRouter(&rest.Container{
		EvaluationService: evalSvc,
		ReportService:     reportSvc,
		Logger:            zlog,
		StaticDir:         cfg.StaticDir,
		CORSOrigin:        cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen and serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("forced shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

func buildSessionStore(ctx context.Context, cfg *config.Config, zlog *zap.Logger) cache.SessionStore {
	if cfg.Sessions.Backend != config.SessionBackendRedis {
		return cache.NewMemorySessionStore()
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Sessions.RedisAddr})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zlog.Fatal("pinging redis", zap.String("addr", cfg.Sessions.RedisAddr), zap.Error(err))
	}
	zlog.Info("connected to redis", zap.String("addr", cfg.Sessions.RedisAddr))

	return cache.NewRedisSessionStore(rdb)
}

func buildQuestionRepo(ctx context.Context, cfg *config.Config, zlog *zap.Logger) repository.QuestionRepo {
	if cfg.Questions.Source != config.QuestionSourceMongo {
		return repository.NewStaticQuestionRepo(rubric.DefaultQuestions())
	}

	client := connectMongo(ctx, cfg, zlog)
	return repository.NewMongoQuestionRepo(client, cfg.Questions.MongoDatabase)
}

func connectMongo(ctx context.Context, cfg *config.Config, zlog *zap.Logger) *mongo.Client {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Questions.MongoURI))
	if err != nil {
		zlog.Fatal("connecting to mongodb", zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		zlog.Fatal("pinging mongodb", zap.Error(err))
	}
	zlog.Info("connected to mongodb", zap.String("database", cfg.Questions.MongoDatabase))

	return client
}

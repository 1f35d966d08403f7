package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"selectra/internal/config"
	"selectra/internal/logger"
	"selectra/internal/repository"
	"selectra/internal/rubric"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the MongoDB question bank with the built-in rubric questions",
	Run: func(_ *cobra.Command, _ []string) {
		seed()
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed() {
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

	client := connectMongo(ctx, cfg, zlog)
	defer client.Disconnect(ctx)

	questions := rubric.DefaultQuestions()
	if err := repository.Seed(ctx, client, cfg.Questions.MongoDatabase, questions); err != nil {
		zlog.Fatal("seeding questions", zap.Error(err))
	}

	zlog.Info("question bank seeded", zap.Int("count", len(questions)))
}

package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/khayt/stylist-bot/internal/bot"
	"github.com/khayt/stylist-bot/internal/catalog"
	"github.com/khayt/stylist-bot/internal/dictionary"
	"github.com/khayt/stylist-bot/internal/engine"
	"github.com/khayt/stylist-bot/internal/storage"
	"github.com/khayt/stylist-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	ctx := context.Background()

	// Initialize session storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory session storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL session storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the catalog source
	var source catalog.Source
	if cfg.Mongo.Enabled {
		logger.Info("Using MongoDB catalog source")
		source, err = catalog.NewMongoSource(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		if err != nil {
			logger.Fatal("Failed to initialize catalog source", zap.Error(err))
		}
	} else {
		logger.Info("Using demo catalog")
		source = catalog.NewMemorySource(catalog.DemoCatalog())
	}
	defer source.Close(ctx)

	// Kick off the one-shot dictionary fetch; the classifier degrades to
	// built-in patterns until (unless) it completes.
	dict := dictionary.NewLoader(http.DefaultClient, cfg.Dictionary.IntentsURL, cfg.Dictionary.ProductsURL, logger)
	dict.Start(ctx)

	// Initialize the assistant backend
	rules := engine.NewRuleAssistant(dict)
	var assistant engine.Assistant = rules
	if cfg.Assistant.Backend == "gpt" {
		logger.Info("Using GPT assistant backend")
		assistant = engine.NewGPTAssistant(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			rules,
			logger,
		)
	}

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, store, source, assistant, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/princinho/arcadiabackend/config"
	"github.com/princinho/arcadiabackend/database"
	"github.com/princinho/arcadiabackend/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "arcadia",
	Short: "Arcadia catalog API",
	Long:  "Serves Arcadia products, reviews, blog posts, FAQs and price quotes backed by MongoDB.",
	RunE:  runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: json, console")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	log = logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
}

// openStore connects to the configured database. It returns a nil store
// when no connection string is set or the URI cannot be used; the caller
// then runs store-less. A failed ping is only logged.
func openStore(ctx context.Context) (database.Store, *mongo.Client) {
	if !cfg.StoreConfigured() {
		log.Warn().Msg("DATABASE_URL not set, running without a database")
		return nil, nil
	}
	client, err := database.Connect(ctx, cfg.DatabaseURL, cfg.ConnectTimeout)
	if client == nil {
		log.Error().Err(err).Msg("database connection failed, running without a database")
		return nil, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("database not reachable yet")
	} else {
		log.Info().Str("database", cfg.DatabaseName).Msg("connected to MongoDB")
	}
	return database.NewMongoStore(client, cfg.DatabaseName), client
}

func closeStore(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("database disconnect failed")
	}
}

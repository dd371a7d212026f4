package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/paisaflow/backend/internal/config"
	"github.com/paisaflow/backend/internal/models"
	"github.com/paisaflow/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Settings file is optional, without one the defaults apply
	loader, err := config.NewLoader(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	if _, err := loader.Watch(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create data and upload directories
	dataDir := filepath.Join(".", "data")
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	uploadDir, ok := os.LookupEnv("UPLOAD_DIR")
	if !ok {
		uploadDir = filepath.Join(dataDir, "uploads")
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database. Connect also migrates all models so
	// that the schema is correct
	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join(dataDir, "paisaflow.db")
	}
	if err := models.Connect(dbPath + "?_pragma=foreign_keys(1)"); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Seed the default budgets on first startup
	if err := models.SeedBudgets(models.DB, loader.Config().Budgets); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(loader, uploadDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"idscan-backend/internal/extractions"
	"idscan-backend/internal/ocr"
	"idscan-backend/internal/shared/config"
	"idscan-backend/internal/shared/server"
	"idscan-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Repo              extractions.Repo
	Recognizer        *ocr.Recognizer
	ExtractionService *extractions.Service
	ExtractionHandler *extractions.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo extractions.Repo
	if sqlDB != nil {
		repo = &extractions.PGRepo{DB: sqlDB}
	} else {
		repo = extractions.NewMemoryRepo()
	}

	engine := ocr.NewTesseractEngine(cfg.OCRLang)
	recognizer := ocr.NewRecognizer(ocr.Config{
		Pdftoppm: cfg.PdftoppmPath,
		DPI:      cfg.RasterDPI,
	}, engine)

	svc := extractions.NewService(recognizer, repo)
	handler := extractions.NewHandler(svc)

	app := &App{
		Config:            cfg,
		DB:                sqlDB,
		Repo:              repo,
		Recognizer:        recognizer,
		ExtractionService: svc,
		ExtractionHandler: handler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		ExtractionHandler: app.ExtractionHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory store")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

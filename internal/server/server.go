package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	mid "github.com/lattice-kg/lattice/internal/server/middleware"
	"github.com/lattice-kg/lattice/internal/util"
	"github.com/lattice-kg/lattice/pkg/logger"
	"github.com/lattice-kg/lattice/pkg/proof"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// builderConfig starts from the library defaults and lets deployments
// override the budgets from the environment at startup. There is no
// per-request tuning surface.
func builderConfig() proof.Config {
	cfg := proof.DefaultConfig()
	cfg.MaxNodes = util.GetEnvInt("PROOF_MAX_NODES", cfg.MaxNodes)
	cfg.MaxEdges = util.GetEnvInt("PROOF_MAX_EDGES", cfg.MaxEdges)
	cfg.MaxPathsPerUsed = util.GetEnvInt("PROOF_MAX_PATHS_PER_USED", cfg.MaxPathsPerUsed)
	cfg.MaxTotalPaths = util.GetEnvInt("PROOF_MAX_TOTAL_PATHS", cfg.MaxTotalPaths)
	cfg.MaxContextRatio = util.GetEnvFloat("PROOF_MAX_CONTEXT_RATIO", cfg.MaxContextRatio)
	return cfg
}

func Init() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &mid.App{
		Builder: proof.NewBuilder(builderConfig()),
		APIKey:  util.GetEnv("API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(mid.RequestIDMiddleware)
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("32M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

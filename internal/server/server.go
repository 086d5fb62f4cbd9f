package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/spacesedan/ytsentiment/internal/models"
)

const APP_NAME = "API de Análisis de Sentimientos"

type Analyzer interface {
	Analyze(ctx context.Context, videoID string) (*models.AnalysisResponse, error)
}

type Server struct {
	app      *fiber.App
	analyzer Analyzer
}

func New(analyzer Analyzer, corsOrigins []string) *Server {
	app := fiber.New(fiber.Config{
		AppName:      APP_NAME,
		ErrorHandler: errorHandler,
	})

	s := &Server{app: app, analyzer: analyzer}

	app.Use(newRequestLogger())
	app.Use(recoverer.New())
	app.Use(newCORS(corsOrigins))

	app.Get("/", s.handleRoot)
	app.Get("/analizar/", s.handleAnalyze)

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	slog.Info("[Server] Listening", slog.String("addr", addr))
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

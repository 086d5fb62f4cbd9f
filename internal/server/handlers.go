package server

import (
	"errors"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"

	"github.com/spacesedan/ytsentiment/internal/analysis"
)

const (
	VIDEO_ID_LENGTH = 11

	WELCOME_MESSAGE    = "Bienvenido a la API de Análisis de Sentimientos. Usa /docs para ver la documentación."
	DETAIL_NO_API_KEY  = "Servicio no disponible: Falta configuración de API Key en el servidor."
	DETAIL_UPSTREAM    = "Error al contactar la API de YouTube: "
	DETAIL_NO_COMMENTS = "No se encontraron comentarios para este video."
	DETAIL_VIDEO_ID    = "video_id debe tener exactamente 11 caracteres"
)

func (s *Server) handleRoot(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": WELCOME_MESSAGE})
}

func (s *Server) handleAnalyze(c fiber.Ctx) error {
	videoID := c.Query("video_id")
	if utf8.RuneCountInString(videoID) != VIDEO_ID_LENGTH {
		return detail(c, fiber.StatusBadRequest, DETAIL_VIDEO_ID)
	}

	resp, err := s.analyzer.Analyze(c.Context(), videoID)
	if err != nil {
		var upstream *analysis.UpstreamError
		switch {
		case errors.Is(err, analysis.ErrConfigurationMissing):
			return detail(c, fiber.StatusServiceUnavailable, DETAIL_NO_API_KEY)
		case errors.Is(err, analysis.ErrNoComments):
			return detail(c, fiber.StatusNotFound, DETAIL_NO_COMMENTS)
		case errors.As(err, &upstream):
			return detail(c, fiber.StatusInternalServerError, DETAIL_UPSTREAM+upstream.Cause.Error())
		default:
			return err
		}
	}

	return c.JSON(resp)
}

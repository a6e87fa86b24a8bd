package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HarshitaThota/OneiroNet-AI/internal/app"
	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

type Handler struct {
	svc *app.DreamService
}

func NewHandler(svc *app.DreamService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/api/moonphase", h.MoonPhase)
	e.GET("/api/symbols", h.Symbols)
	e.POST("/api/ritual", h.Ritual)
	e.POST("/api/interpret", h.Interpret)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Interpret(c echo.Context) error {
	var req InterpretRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	start := time.Now()
	result, err := h.svc.Interpret(c.Request().Context(), app.InterpretRequest{
		DreamText: req.DreamText,
		Answers:   req.Answers,
		SunSign:   req.SunSign,
		DreamDate: req.DreamDate,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toInterpretResponse(result, requestID, time.Since(start).Milliseconds()))
}

func (h *Handler) MoonPhase(c echo.Context) error {
	moon, err := h.svc.MoonPhase(c.QueryParam("date"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toMoonResponse(moon))
}

func (h *Handler) Symbols(c echo.Context) error {
	term, entry, err := h.svc.Symbol(c.Request().Context(), c.QueryParam("term"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, SymbolResponse{
		Term:      term,
		Jungian:   entry.Jungian,
		Vedic:     entry.Vedic,
		Astrology: entry.Astrology,
		Cultural:  entry.Cultural,
	})
}

func (h *Handler) Ritual(c echo.Context) error {
	var req RitualRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	bundle, err := h.svc.Ritual(c.Request().Context(), req.DreamType)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, RitualResponse{
		Breath: bundle.Breath,
		Affirm: bundle.Affirm,
		Prompt: bundle.Prompt,
	})
}

func toInterpretResponse(r app.InterpretResult, requestID string, latencyMS int64) InterpretResponse {
	agents := make(map[string]string, len(r.Agents))
	for lens, text := range r.Agents {
		agents[string(lens)] = text
	}
	return InterpretResponse{
		Moon:   toMoonResponse(r.Moon),
		Agents: agents,
		Meta: MetaResponse{
			RequestID: requestID,
			LatencyMS: latencyMS,
		},
	}
}

func toMoonResponse(m domain.MoonPhase) MoonResponse {
	return MoonResponse{
		PhaseName:    m.PhaseName,
		Illumination: m.Illumination,
		Influence:    m.Influence,
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrEmptyDream), errors.Is(err, domain.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamLLM):
		slog.Error("upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream LLM failure"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

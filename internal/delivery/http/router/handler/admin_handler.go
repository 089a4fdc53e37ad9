package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "prepai/internal/delivery/context"
	"prepai/internal/delivery/http/response"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler exposes maintenance operations to ADMIN sessions.
type AdminHandler struct {
	seed   usecase.SeedUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(seed usecase.SeedUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{seed: seed, logger: logger}
}

// Seed loads the reference dataset. Entries already present are skipped.
func (h *AdminHandler) Seed(c echo.Context) error {
	report, err := h.seed.Seed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if session, ok := deliverycontext.GetSession(c); ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Seed triggered over HTTP", slog.String("userID", session.User.ID))
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"problemsCreated":  report.ProblemsCreated,
		"problemsSkipped":  report.ProblemsSkipped,
		"questionsCreated": report.QuestionsCreated,
		"questionsSkipped": report.QuestionsSkipped,
	}, "Database seeding completed")
}

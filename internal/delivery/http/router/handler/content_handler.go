package handler

import (
	"net/http"

	"prepai/internal/delivery/http/response"
	"prepai/internal/domain/entity"
	domainerrors "prepai/internal/domain/errors"
	"prepai/internal/domain/repository"
	"prepai/internal/errors"
	"prepai/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProblemQuery is the query string of GET /api/problems.
type ProblemQuery struct {
	Difficulty string `query:"difficulty" json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Topic      string `query:"topic" json:"topic" validate:"max=64"`
	Limit      int    `query:"limit" json:"limit" validate:"gte=0,lte=100"`
	Offset     int    `query:"offset" json:"offset" validate:"gte=0"`
}

// QuestionQuery is the query string of GET /api/questions.
type QuestionQuery struct {
	Category   string `query:"category" json:"category" validate:"omitempty,oneof=technical behavioral system_design"`
	Role       string `query:"role" json:"role" validate:"max=64"`
	Difficulty string `query:"difficulty" json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Limit      int    `query:"limit" json:"limit" validate:"gte=0,lte=100"`
	Offset     int    `query:"offset" json:"offset" validate:"gte=0"`
}

// ContentHandler serves the practice problems and interview questions.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListProblems lists problems, optionally filtered by difficulty and topic.
func (h *ContentHandler) ListProblems(c echo.Context) error {
	var q ProblemQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return domainerrors.NewValidationError("Invalid query parameters", nil)
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	problems, err := h.uc.ListProblems(c.Request().Context(), repository.ProblemFilter{
		Difficulty: entity.Difficulty(q.Difficulty),
		Topic:      q.Topic,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*ProblemView, 0, len(problems))
	for _, p := range problems {
		views = append(views, newProblemView(p))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetProblem returns a single problem by id.
func (h *ContentHandler) GetProblem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NewValidationError("Invalid problem id", []string{"id must be a valid id"})
	}

	problem, err := h.uc.GetProblem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProblemView(problem), "")
}

// ListQuestions lists interview questions filtered by category, role and difficulty.
func (h *ContentHandler) ListQuestions(c echo.Context) error {
	var q QuestionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return domainerrors.NewValidationError("Invalid query parameters", nil)
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	questions, err := h.uc.ListQuestions(c.Request().Context(), repository.QuestionFilter{
		Category:   entity.QuestionCategory(q.Category),
		Role:       q.Role,
		Difficulty: entity.Difficulty(q.Difficulty),
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*QuestionView, 0, len(questions))
	for _, question := range questions {
		views = append(views, newQuestionView(question))
	}

	return response.Success(c, http.StatusOK, views, "")
}

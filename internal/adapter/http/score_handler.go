package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"magicbank-loan-engine/internal/adapter/validation"
	"magicbank-loan-engine/internal/domain/underwriting"
	"magicbank-loan-engine/internal/usecase/scoring"
)

// Scorer is satisfied by *scoring.Usecase.
type Scorer interface {
	Score(ctx context.Context, in scoring.ScoreLoanInput) (*scoring.DecisionDTO, error)
}

type ScoreHandler struct{ uc Scorer }

func NewScoreHandler(uc Scorer) *ScoreHandler { return &ScoreHandler{uc: uc} }

func (h *ScoreHandler) ScoreLoan(c echo.Context) error {
	// Bind + validate body payload JSON
	var req scoring.ScoreLoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: validation.ToFieldErrors(err),
		})
	}

	ctx := scoring.WithRequestID(c.Request().Context(), c.Response().Header().Get(echo.HeaderXRequestID))
	dto, err := h.uc.Score(ctx, req)
	if err != nil {
		// Faults never render as a decision.
		if errors.Is(err, underwriting.ErrPrecondition) {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal scoring error"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, dto)
}

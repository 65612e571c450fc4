package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal creates a savings goal, optionally with a starting balance
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	targetAmount, err := parseAmount(req.TargetAmount)
	if err != nil || targetAmount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.GoalInvalidTarget)
	}

	currentAmount := decimal.Zero
	if req.CurrentAmount != "" {
		currentAmount, err = parseAmount(req.CurrentAmount)
		if err != nil || currentAmount.IsNegative() {
			return SendError(c, apierrors.GoalInvalidAmount)
		}
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, targetAmount, currentAmount)
	if err != nil {
		return h.mapGoalError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GoalResponse{
		Goal:    goal,
		Message: "Savings goal created successfully",
	})
}

// GetGoal retrieves one goal with its progress
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	goal, progress, err := h.goalService.GetGoal(userID, goalID)
	if err != nil {
		return h.mapGoalError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{Goal: goal, Progress: &progress})
}

// ListGoals returns every goal for the user with progress attached
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goals, progress, err := h.goalService.ListGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.GoalListResponse{Goals: make([]dto.GoalWithProgress, len(goals))}
	for i := range goals {
		response.Goals[i] = dto.GoalWithProgress{
			Goal:     goals[i],
			Progress: progress[i],
		}
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteGoal removes a savings goal
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		return h.mapGoalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddFunds deposits a positive amount into a goal
func (h *GoalHandler) AddFunds(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	var req dto.AddFundsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidAmount)
	}

	goal, progress, err := h.goalService.AddFunds(userID, goalID, amount)
	if err != nil {
		return h.mapGoalError(c, err)
	}

	message := "Funds added successfully"
	if progress.Completed {
		message = "Funds added, goal reached"
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{
		Goal:     goal,
		Progress: &progress,
		Message:  message,
	})
}

// SetAmount overwrites the goal's saved amount with an absolute value
func (h *GoalHandler) SetAmount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	var req dto.SetGoalAmountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidAmount)
	}

	goal, progress, err := h.goalService.SetAmount(userID, goalID, amount)
	if err != nil {
		return h.mapGoalError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{
		Goal:     goal,
		Progress: &progress,
		Message:  "Goal amount updated",
	})
}

func (h *GoalHandler) mapGoalError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.GoalNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthAccessDenied)
	case errors.Is(err, models.ErrInvalidTargetAmount):
		return SendError(c, apierrors.GoalInvalidTarget)
	case errors.Is(err, models.ErrNegativeSavedAmount), errors.Is(err, models.ErrNonPositiveGoalDelta):
		return SendError(c, apierrors.GoalInvalidAmount)
	case errors.Is(err, models.ErrMissingGoalName):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("Name is required"))
	default:
		return SendSystemError(c, err)
	}
}

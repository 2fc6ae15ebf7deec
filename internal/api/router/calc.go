package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/linked-calc/internal/apperr"
	"github.com/DjordjeVuckovic/linked-calc/internal/dto"
	"github.com/DjordjeVuckovic/linked-calc/internal/evaluation"
	"github.com/DjordjeVuckovic/linked-calc/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e       *echo.Echo
	service *evaluation.Service
}

func NewCalcRouter(e *echo.Echo, service *evaluation.Service) *CalcRouter {
	return &CalcRouter{
		e:       e,
		service: service,
	}
}

func (r *CalcRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/evaluate", r.evaluateHandler)
	v1.POST("/validate", r.validateHandler)
	v1.GET("/history", r.historyHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Evaluates the expression strictly left to right in single precision. Division by zero yields Infinity or NaN, reported in display with result omitted.
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression to evaluate"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} apperr.ErrorBody
// @Failure 500 {object} apperr.ErrorBody
// @Router /api/v1/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	res, err := r.service.Evaluate(c.Request().Context(), req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluateResponse(res))
}

// validateHandler godoc
// @Summary Validate an expression
// @Description Reports whether the expression is well formed and, if not, where and why it is rejected.
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression to validate"
// @Success 200 {object} dto.ValidateResponse
// @Failure 400 {object} apperr.ErrorBody
// @Router /api/v1/validate [post]
func (r *CalcRouter) validateHandler(c echo.Context) error {
	req, err := bindExpression(c)
	if err != nil {
		return err
	}

	verdict := r.service.Validate(c.Request().Context(), req.Expression)
	return c.JSON(http.StatusOK, dto.NewValidateResponse(verdict))
}

// historyHandler godoc
// @Summary List recent evaluations
// @Description Returns the most recent evaluations, newest first.
// @Tags calc
// @Produce json
// @Param limit query int false "Maximum number of records (default 20, max 1000)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} apperr.ErrorBody
// @Failure 500 {object} apperr.ErrorBody
// @Router /api/v1/history [get]
func (r *CalcRouter) historyHandler(c echo.Context) error {
	var req pagination.LimitRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid query", err)
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationf("invalid query: %v", err)
	}

	records, err := r.service.History(c.Request().Context(), req.Limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewHistoryResponse(records))
}

func bindExpression(c echo.Context) (dto.ExpressionRequest, error) {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return req, apperr.NewValidationWrap("invalid request body", err)
	}
	return req, nil
}

package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/fareparse/internal/compare"
	"github.com/dharmasatrya/fareparse/internal/models"
	"github.com/dharmasatrya/fareparse/internal/service"
	"github.com/dharmasatrya/fareparse/internal/sources"
)

const defaultUploadName = "upload"

type FareHandler struct {
	service *service.Service
}

func NewFareHandler(svc *service.Service) *FareHandler {
	return &FareHandler{service: svc}
}

// Variants lists a document's variants. GET reads ?source=, POST reads the
// XML request body and names it by ?source= or "upload".
func (h *FareHandler) Variants(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return badRequest(c, err)
	}

	src, err := h.source(c, q.Source)
	if err != nil {
		return badRequest(c, err)
	}

	resp, err := h.service.Variants(c.Request().Context(), src, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FareHandler) Best(c echo.Context) error {
	q, err := bindQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	if err := q.Validate(); err != nil {
		return badRequest(c, err)
	}

	src, err := h.source(c, q.Source)
	if err != nil {
		return badRequest(c, err)
	}

	resp, err := h.service.Best(c.Request().Context(), src, h.service.Weights(q.TimeWeight, q.CostWeight))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FareHandler) Compare(c echo.Context) error {
	left, right := c.QueryParam("a"), c.QueryParam("b")
	if left == "" || right == "" {
		return badRequest(c, models.ErrMissingSource)
	}

	resp, err := h.service.Compare(c.Request().Context(), h.service.Resolve(left), h.service.Resolve(right))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// CompareOptions diffs two option objects posted as JSON.
func (h *FareHandler) CompareOptions(c echo.Context) error {
	var req models.CompareOptionsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	diff, err := compare.Fields(req.Left, req.Right)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, diff)
}

func (h *FareHandler) source(c echo.Context, name string) (sources.Source, error) {
	if c.Request().Method == http.MethodPost {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = defaultUploadName
		}
		return sources.NewBytesSource(name, body), nil
	}

	if name == "" {
		return nil, models.ErrMissingSource
	}
	return h.service.Resolve(name), nil
}

func bindQuery(c echo.Context) (models.VariantQuery, error) {
	var q models.VariantQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return q, err
	}

	if v := c.QueryParam("max_cost"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, errors.New("max_cost must be a number")
		}
		q.MaxCost = &f
	}
	if v := c.QueryParam("max_seconds"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return q, errors.New("max_seconds must be an integer")
		}
		q.MaxSeconds = &n
	}
	if v := c.QueryParam("roundtrip"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, errors.New("roundtrip must be true or false")
		}
		q.RoundTrip = &b
	}

	return q, nil
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

// writeError maps document problems to 422, unreachable sources to 502 and
// anything else to 500.
func writeError(c echo.Context, err error) error {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return badRequest(c, err)
	}

	var docErr models.DocumentError
	if errors.As(err, &docErr) {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "document_error",
			Message: err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
	}

	var srcErr *sources.SourceError
	if errors.As(err, &srcErr) {
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "source_error",
			Message: err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

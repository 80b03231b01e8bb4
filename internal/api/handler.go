package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/advent-of-code-2022/internal/api/middleware"
	"github.com/povarna/advent-of-code-2022/internal/executor"
	"github.com/povarna/advent-of-code-2022/internal/models"
	"github.com/povarna/advent-of-code-2022/internal/puzzle"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

type Handler struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewHandler(executor *executor.Executor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version,
	})
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.executor.Puzzles())
}

// POST /api/v1/puzzles/{day}/solve
// Body: SolveBody
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	day, err := strconv.Atoi(req.PathParameter("day"))
	if err != nil || day < puzzle.FirstDay || day > puzzle.LastDay {
		middleware.HandleError(resp, fmt.Errorf("%w: %q", puzzle.ErrInvalidDay, req.PathParameter("day")), http.StatusBadRequest)
		return
	}

	var body SolveBody
	if req.Request.ContentLength != 0 {
		if err := req.ReadEntity(&body); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Error().Err(err).Msg("Failed to parse request body")
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
	}

	h.logger.Info().
		Int("day", day).
		Bool("has_input", body.Input != "").
		Msg("Start solve")

	ctx := req.Request.Context()
	result, err := h.executor.Execute(ctx, models.SolveRequest{Day: day, Input: body.Input})
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, puzzle.ErrUnknownDay):
		return http.StatusNotFound
	case errors.Is(err, executor.ErrFetchInput):
		return http.StatusBadGateway
	case errors.Is(err, executor.ErrSolve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/advent-of-code-2022/internal/api/middleware"
	"github.com/povarna/advent-of-code-2022/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List registered puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes([]models.PuzzleInfo{}).
			Returns(200, "OK", []models.PuzzleInfo{}))

	ws.
		Route(ws.POST("/puzzles/{day}/solve").
			To(handler.Solve).
			Doc("Solve both parts of a day").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("day", "Puzzle day (1-25)").DataType("integer")).
			Reads(SolveBody{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", middleware.ErrorResponse{}).
			Returns(502, "Input Fetch Failed", middleware.ErrorResponse{}))

	container.Add(ws)
}

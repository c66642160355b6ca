package httpapi

import (
	"net/http"

	"edudb-server/internal/infra/httpserver"
	"edudb-server/internal/learning/httpapi/internal"
	"edudb-server/internal/learning/usecases"
)

const (
	progressSavedMessage = "Progress saved successfully"
	progressResetMessage = "Progress reset successfully"

	invalidProgressErrMessage = "invalid progress payload"
)

func NewProgressController(service usecases.ProgressService) *ProgressController {
	return &ProgressController{
		service: service,
	}
}

var _ httpserver.Controller = &ProgressController{}

type ProgressController struct {
	service usecases.ProgressService
}

func (c *ProgressController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /api/progress", c.getProgress())
	router.Handle("POST /api/progress", c.saveProgress())
	router.Handle("POST /api/progress/reset", c.resetProgress())
}

func (c *ProgressController) getProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := c.service.GetProgress(r.Context())
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToProgressResponse(progress, c.service.Scoring()))
	}
}

func (c *ProgressController) saveProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ProgressRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidProgressErrMessage)
			return
		}

		if err := c.service.SaveProgress(r.Context(), body.ToDomain()); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Success: true, Message: progressSavedMessage})
	}
}

func (c *ProgressController) resetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.ResetProgress(r.Context()); err != nil {
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Message: err.Error()})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.MessageResponse{Success: true, Message: progressResetMessage})
	}
}

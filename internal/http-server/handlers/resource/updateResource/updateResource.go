package updateResource

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strconv"
)

type UpdateRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type UpdateResponse struct {
	response.Response
	Resource *models.Resource `json:"resource,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceUpdater
type ResourceUpdater interface {
	Get(key models.ResourceKey) (models.Resource, error)
	Update(r models.Resource) error
}

// New renames a resource or changes its capacity. Existing bookings keep
// the resource data they were stamped with.
func New(log *slog.Logger, updater ResourceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.resource.updateResource.New"

		log := log.With(slog.String("op", op))

		kind := models.Kind(chi.URLParam(r, "kind"))
		if !kind.Valid() {
			log.Error("invalid resource kind", slog.String("kind", string(kind)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid resource kind"))
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid resource id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid resource id format"))
			return
		}

		key := models.ResourceKey{Kind: kind, ID: id}
		log = log.With(slog.String("resource", key.String()))

		var req UpdateRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		resource, err := updater.Get(key)
		if err == nil {
			resource.Name = req.Name
			resource.Capacity = req.Capacity
			err = updater.Update(resource)
		}
		if err != nil {
			log.Error("failed to update resource", sl.Err(err))

			if errors.Is(err, storage.ErrResourceNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("resource not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update resource"))
			return
		}

		log.Info("resource updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Resource: &resource,
		})
	}
}

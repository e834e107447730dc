package createResource

import (
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

type ResourceRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Kind     string `json:"kind" validate:"required,oneof=workspace conference_room"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type ResourceResponse struct {
	response.Response
	Resource *models.Resource `json:"resource,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceCreator
type ResourceCreator interface {
	Create(r models.Resource) error
}

func New(log *slog.Logger, creator ResourceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.resource.createResource.New"

		log := log.With(
			slog.String("op", op),
		)

		var req ResourceRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		resource := models.Resource{
			ID:       req.ID,
			Kind:     models.Kind(req.Kind),
			Name:     req.Name,
			Capacity: req.Capacity,
		}

		if err = creator.Create(resource); err != nil {
			log.Error("failed to add resource", sl.Err(err))

			if errors.Is(err, storage.ErrResourceExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("resource already exists"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add resource"))

			return
		}

		log.Info("resource added", slog.String("resource", resource.Key().String()))

		responseOK(w, r, resource)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, resource models.Resource) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, ResourceResponse{
		Response: response.OK(),
		Resource: &resource,
	})
}

package deleteResource

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strconv"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceDeleter
type ResourceDeleter interface {
	Delete(key models.ResourceKey) error
}

func New(log *slog.Logger, deleter ResourceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.resource.deleteResource.New"

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

		if err = deleter.Delete(key); err != nil {
			log.Error("failed to delete resource", sl.Err(err))

			if errors.Is(err, storage.ErrResourceNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("resource not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete resource"))
			return
		}

		log.Info("resource deleted")

		render.JSON(w, r, response.OK())
	}
}

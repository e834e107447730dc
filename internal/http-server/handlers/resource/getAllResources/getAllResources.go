package getAllResources

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/models"
)

type ResourcesResponse struct {
	response.Response
	Resources []models.Resource `json:"resources"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourcesGetter
type ResourcesGetter interface {
	List(kind models.Kind) []models.Resource
}

func New(log *slog.Logger, getter ResourcesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.resource.getAllResources.New"

		log := log.With(slog.String("op", op))

		kind := models.Kind(r.URL.Query().Get("kind"))
		if kind != "" && !kind.Valid() {
			log.Error("invalid resource kind", slog.String("kind", string(kind)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid resource kind"))
			return
		}

		resources := getter.List(kind)

		log.Info("resources retrieved successfully", slog.Int("count", len(resources)))

		responseOK(w, r, resources)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, resources []models.Resource) {
	if resources == nil {
		resources = []models.Resource{}
	}

	render.JSON(w, r, ResourcesResponse{
		Response:  response.OK(),
		Resources: resources,
	})
}

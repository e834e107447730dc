package getFreeSlots

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strconv"
	"time"
)

type SlotsResponse struct {
	response.Response
	Resource *models.Resource `json:"resource,omitempty"`
	Date     string           `json:"date,omitempty"`
	Slots    []models.Slot    `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceGetter
type ResourceGetter interface {
	Get(key models.ResourceKey) (models.Resource, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotFinder
type SlotFinder interface {
	RequestBooking(req booking.Request) ([]models.Slot, error)
}

func New(log *slog.Logger, resources ResourceGetter, finder SlotFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getFreeSlots.New"

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

		dateStr := r.URL.Query().Get("date")
		if dateStr == "" {
			log.Error("date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date is required"))
			return
		}

		date, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
		if err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format, expected YYYY-MM-DD"))
			return
		}

		key := models.ResourceKey{Kind: kind, ID: id}
		log = log.With(slog.String("resource", key.String()), slog.String("date", dateStr))

		resource, err := resources.Get(key)
		if err != nil {
			log.Error("failed to get resource", sl.Err(err))
			if errors.Is(err, storage.ErrResourceNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("resource not found"))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get resource"))
			return
		}

		slots, err := finder.RequestBooking(booking.Request{Resource: resource, Date: date})
		if err != nil {
			if errors.Is(err, booking.ErrNoAvailability) {
				log.Info("no free slots", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available slots for the selected date and resource"))
				return
			}
			log.Error("failed to get free slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get free slots"))
			return
		}

		log.Info("free slots computed", slog.Int("count", len(slots)))

		responseOK(w, r, resource, dateStr, slots)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, resource models.Resource, date string, slots []models.Slot) {
	render.JSON(w, r, SlotsResponse{
		Response: response.OK(),
		Resource: &resource,
		Date:     date,
		Slots:    slots,
	})
}

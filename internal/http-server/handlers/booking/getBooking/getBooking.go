package getBooking

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
	"time"
)

type BookingResponse struct {
	response.Response
	Booking *models.Booking     `json:"booking,omitempty"`
	State   models.BookingState `json:"state,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	Booking(id int64) (models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		b, err := getter.Booking(id)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved")

		responseOK(w, r, b, b.State(now()))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking, state models.BookingState) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  &b,
		State:    state,
	})
}

package removeBooking

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"strconv"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRemover
type BookingRemover interface {
	RemoveBooking(id int64) error
}

// New deletes a booking for an administrator. Unlike cancellation it also
// accepts elapsed bookings.
func New(log *slog.Logger, remover BookingRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.removeBooking.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		if err = remover.RemoveBooking(id); err != nil {
			log.Error("failed to remove booking", sl.Err(err))

			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove booking"))
			return
		}

		log.Info("booking removed by admin")

		render.JSON(w, r, response.OK())
	}
}

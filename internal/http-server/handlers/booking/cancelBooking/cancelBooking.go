package cancelBooking

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"strconv"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(id int64) error
}

func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

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

		err = canceller.CancelBooking(id)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrAlreadyElapsed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking end time has already passed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, response.OK())
	}
}

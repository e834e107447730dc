package updateBooking

import (
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
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

type UpdateRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

type UpdateResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRescheduler
type BookingRescheduler interface {
	Booking(id int64) (models.Booking, error)
	RescheduleBooking(b models.Booking) error
}

// New moves an existing booking to another interval on the same resource.
func New(log *slog.Logger, rescheduler BookingRescheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		b, err := rescheduler.Booking(id)
		if err == nil {
			b.Start = req.Start.UTC()
			b.End = req.End.UTC()
			err = rescheduler.RescheduleBooking(b)
		}
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrInvalidInterval):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking end time must be after start time"))
			case errors.Is(err, storage.ErrTimeConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking time conflicts with existing booking"))
			case errors.Is(err, booking.ErrAlreadyElapsed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking end time has already passed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Booking:  &b,
		})
	}
}

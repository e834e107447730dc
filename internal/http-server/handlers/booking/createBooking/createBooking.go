package createBooking

import (
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"time"
)

// BookingRequest carries the slot the user picked from the free slot list
// and the part of it they want to book.
type BookingRequest struct {
	User         string    `json:"user" validate:"required"`
	ResourceKind string    `json:"resource_kind" validate:"required,oneof=workspace conference_room"`
	ResourceID   int64     `json:"resource_id" validate:"required,gt=0"`
	SlotStart    time.Time `json:"slot_start" validate:"required"`
	SlotEnd      time.Time `json:"slot_end" validate:"required"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResourceGetter
type ResourceGetter interface {
	Get(key models.ResourceKey) (models.Resource, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingConfirmer
type BookingConfirmer interface {
	ConfirmBooking(sel booking.Selection) (models.Booking, error)
}

func New(log *slog.Logger, resources ResourceGetter, confirmer BookingConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req BookingRequest

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

		key := models.ResourceKey{Kind: models.Kind(req.ResourceKind), ID: req.ResourceID}
		log = log.With(slog.String("resource", key.String()), slog.String("user", req.User))

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

		b, err := confirmer.ConfirmBooking(booking.Selection{
			Resource: resource,
			User:     req.User,
			Slot:     models.Slot{Start: req.SlotStart.UTC(), End: req.SlotEnd.UTC()},
			Start:    req.Start.UTC(),
			End:      req.End.UTC(),
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidRefinement):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("booking times must lie within the selected slot"))
			case errors.Is(err, storage.ErrPastStartTime):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking start time cannot be in the past"))
			case errors.Is(err, storage.ErrInvalidInterval):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("booking end time must be after start time"))
			case errors.Is(err, storage.ErrTimeConflict), errors.Is(err, storage.ErrDuplicateID):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking time conflicts with existing booking"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("id", b.ID))

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  &b,
	})
}

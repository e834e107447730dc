package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/booking/cancelBooking"
	"roomBooker/internal/http-server/handlers/booking/createBooking"
	"roomBooker/internal/http-server/handlers/booking/getBooking"
	"roomBooker/internal/http-server/handlers/booking/getBookings"
	"roomBooker/internal/http-server/handlers/booking/getFreeSlots"
	"roomBooker/internal/http-server/handlers/booking/removeBooking"
	"roomBooker/internal/http-server/handlers/booking/updateBooking"
	"roomBooker/internal/http-server/handlers/resource/createResource"
	"roomBooker/internal/http-server/handlers/resource/deleteResource"
	"roomBooker/internal/http-server/handlers/resource/getAllResources"
	"roomBooker/internal/http-server/handlers/resource/updateResource"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/http-server/middleware/mwratelimit"
	"roomBooker/internal/storage/catalog"
	"time"
)

type Deps struct {
	Catalog *catalog.Catalog
	Booking *booking.Service
	Limiter *mwratelimit.Limiter
	Now     func() time.Time
}

func New(log *slog.Logger, deps Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	if deps.Limiter != nil {
		router.Use(mwratelimit.New(log, deps.Limiter))
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	router.Route("/resources", func(r chi.Router) {
		r.Post("/", createResource.New(log, deps.Catalog))
		r.Get("/", getAllResources.New(log, deps.Catalog))
		r.Put("/{kind}/{id}", updateResource.New(log, deps.Catalog))
		r.Delete("/{kind}/{id}", deleteResource.New(log, deps.Catalog))
		r.Get("/{kind}/{id}/slots", getFreeSlots.New(log, deps.Catalog, deps.Booking))
	})

	router.Route("/bookings", func(r chi.Router) {
		r.Post("/", createBooking.New(log, deps.Catalog, deps.Booking))
		r.Get("/", getBookings.New(log, deps.Booking))
		r.Get("/{id}", getBooking.New(log, deps.Booking, deps.Now))
		r.Put("/{id}", updateBooking.New(log, deps.Booking))
		r.Delete("/{id}", cancelBooking.New(log, deps.Booking))
	})

	router.Delete("/admin/bookings/{id}", removeBooking.New(log, deps.Booking))

	return router
}

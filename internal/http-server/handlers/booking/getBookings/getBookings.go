package getBookings

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/models"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	AllBookings() []models.Booking
	BookingsForUser(user string) []models.Booking
}

// New lists every booking, or only the bookings of ?user= when it is set.
func New(log *slog.Logger, getter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookings.New"

		log := log.With(slog.String("op", op))

		var bookings []models.Booking
		if user := r.URL.Query().Get("user"); user != "" {
			log = log.With(slog.String("user", user))
			bookings = getter.BookingsForUser(user)
		} else {
			bookings = getter.AllBookings()
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	if bookings == nil {
		bookings = []models.Booking{}
	}

	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}

package list_bookings

import (
	"net/http"

	"github.com/m04kA/heal-booking-service/internal/api/handlers"
	"github.com/m04kA/heal-booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров userId, email, page, limit
func ToServiceRequest(r *http.Request) *models.ListBookingsRequest {
	q := r.URL.Query()
	return &models.ListBookingsRequest{
		UserID: q.Get("userId"),
		Email:  q.Get("email"),
		Page:   handlers.QueryInt(r, "page"),
		Limit:  handlers.QueryInt(r, "limit"),
	}
}

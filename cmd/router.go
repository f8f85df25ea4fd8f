package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/create_booking"
	createHealHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/create_heal"
	createSessionHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/create_session"
	createUserHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/create_user"
	deleteBookingHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/delete_booking"
	deleteHealHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/delete_heal"
	deleteUserHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/delete_user"
	getBookingHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/get_booking"
	getHealHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/get_heal"
	getSessionHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/get_session"
	healthHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/list_bookings"
	listHealsHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/list_heals"
	listMyBookingsHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/list_my_bookings"
	listSlotsHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/list_slots"
	listUsersHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/list_users"
	registerHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/register"
	updateBookingHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/update_booking"
	updateHealHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/update_heal"
	updateUserHandler "github.com/m04kA/heal-booking-service/internal/api/handlers/update_user"
	"github.com/m04kA/heal-booking-service/internal/api/middleware"
	"github.com/m04kA/heal-booking-service/internal/config"
	"github.com/m04kA/heal-booking-service/internal/infra/storage/postgres"
	bookingsService "github.com/m04kA/heal-booking-service/internal/service/bookings"
	healsService "github.com/m04kA/heal-booking-service/internal/service/heals"
	usersService "github.com/m04kA/heal-booking-service/internal/service/users"
	createBookingUC "github.com/m04kA/heal-booking-service/internal/usecase/create_booking"
	listSlotsUC "github.com/m04kA/heal-booking-service/internal/usecase/list_slots"
	"github.com/m04kA/heal-booking-service/pkg/logger"
	"github.com/m04kA/heal-booking-service/pkg/metrics"
)

type routerDeps struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	auth    *middleware.Auth
	limiter middleware.RateLimiter
	db      *postgres.Connector

	bookings      *bookingsService.Service
	heals         *healsService.Service
	users         *usersService.Service
	createBooking *createBookingUC.UseCase
	listSlots     *listSlotsUC.UseCase
}

func newRouter(d routerDeps) *mux.Router {
	log := d.log

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(d.createBooking, log)
	listBookings := listBookingsHandler.NewHandler(d.bookings, log)
	listMyBookings := listMyBookingsHandler.NewHandler(d.bookings, log)
	getBooking := getBookingHandler.NewHandler(d.bookings, log)
	updateBooking := updateBookingHandler.NewHandler(d.bookings, log)
	deleteBooking := deleteBookingHandler.NewHandler(d.bookings, log)
	listSlots := listSlotsHandler.NewHandler(d.listSlots, log)
	listHeals := listHealsHandler.NewHandler(d.heals, log)
	getHeal := getHealHandler.NewHandler(d.heals, log)
	createHeal := createHealHandler.NewHandler(d.heals, log)
	updateHeal := updateHealHandler.NewHandler(d.heals, log)
	deleteHeal := deleteHealHandler.NewHandler(d.heals, log)
	register := registerHandler.NewHandler(d.users, log)
	createSession := createSessionHandler.NewHandler(d.users, log)
	getSession := getSessionHandler.NewHandler(log)
	listUsers := listUsersHandler.NewHandler(d.users, log)
	createUser := createUserHandler.NewHandler(d.users, log)
	updateUser := updateUserHandler.NewHandler(d.users, log)
	deleteUser := deleteUserHandler.NewHandler(d.users, log)
	health := healthHandler.NewHandler(d.db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if d.cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(d.metrics))
		r.Handle(d.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", d.cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	rateLimited := middleware.RateLimit(d.limiter, d.cfg.RateLimit.TrustProxyHeaders, log)
	public := func(h http.HandlerFunc) http.Handler { return d.auth.Optional(h) }
	user := func(h http.HandlerFunc) http.Handler { return d.auth.Required(h) }
	admin := func(h http.HandlerFunc) http.Handler { return d.auth.Admin(h) }

	// ============================================================
	// BOOKINGS
	// ============================================================

	api.Handle("/bookings", rateLimited(public(createBooking.Handle))).Methods(http.MethodPost)
	api.Handle("/bookings", admin(listBookings.Handle)).Methods(http.MethodGet)
	api.Handle("/bookings", user(updateBooking.Handle)).Methods(http.MethodPut)
	api.Handle("/bookings", user(deleteBooking.Handle)).Methods(http.MethodDelete)

	// /bookings/mine регистрируется раньше /bookings/{id}
	api.Handle("/bookings/mine", user(listMyBookings.Handle)).Methods(http.MethodGet)

	api.Handle("/bookings/{id}", public(getBooking.Handle)).Methods(http.MethodGet)
	api.Handle("/bookings/{id}", user(updateBooking.Handle)).Methods(http.MethodPut)
	api.Handle("/bookings/{id}", user(deleteBooking.Handle)).Methods(http.MethodDelete)

	api.Handle("/slots", public(listSlots.Handle)).Methods(http.MethodGet)

	// ============================================================
	// HEALS
	// ============================================================

	api.Handle("/heals", public(listHeals.Handle)).Methods(http.MethodGet)
	api.Handle("/heals", admin(createHeal.Handle)).Methods(http.MethodPost)
	api.Handle("/heals", admin(updateHeal.Handle)).Methods(http.MethodPut)
	api.Handle("/heals", admin(deleteHeal.Handle)).Methods(http.MethodDelete)
	api.Handle("/heals/{id}", public(getHeal.Handle)).Methods(http.MethodGet)

	// ============================================================
	// ACCOUNTS
	// ============================================================

	api.Handle("/register", rateLimited(public(register.Handle))).Methods(http.MethodPost)
	api.Handle("/session", rateLimited(public(createSession.Handle))).Methods(http.MethodPost)
	api.Handle("/session", user(getSession.Handle)).Methods(http.MethodGet)

	api.Handle("/users", admin(listUsers.Handle)).Methods(http.MethodGet)
	api.Handle("/users", admin(createUser.Handle)).Methods(http.MethodPost)
	api.Handle("/users", admin(updateUser.Handle)).Methods(http.MethodPut)
	api.Handle("/users", admin(deleteUser.Handle)).Methods(http.MethodDelete)

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	return r
}

package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cinetix/internal/domain"
	redisrepo "cinetix/internal/repository/redis"
	"cinetix/internal/seatmap"
	"cinetix/internal/service"
	"cinetix/internal/service/auth"
	"cinetix/internal/service/booking"
	"cinetix/internal/service/catalog"
	"cinetix/internal/service/query"
	"cinetix/internal/service/report"
)

const dateLayout = "2006-01-02"

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	registerSeatValidation()

	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.POST("/auth/register", handleRegister(svcs))
	r.POST("/auth/login", handleLogin(svcs))

	r.GET("/movies", handleListMovies(svcs))
	r.GET("/movies/:id", handleGetMovie(svcs))
	r.GET("/showtimes", handleListShowtimes(svcs))
	r.GET("/showtimes/:id", handleGetShowtime(svcs))
	r.GET("/showtimes/:id/availability", handleGetAvailability(svcs))

	// Authenticated API
	authed := r.Group("/", AuthMiddleware(svcs.Auth))
	{
		authed.POST("/showtimes/:id/bookings", handleCreateBooking(svcs, idem))
		authed.GET("/bookings/:id", handleGetBooking(svcs))
		authed.GET("/me/bookings", handleListMyBookings(svcs))
	}

	// Admin API
	adminOnly := r.Group("/admin",
		AuthMiddleware(svcs.Auth), RequireRoles(domain.RoleAdmin))
	{
		adminOnly.POST("/movies", handleCreateMovie(svcs))
		adminOnly.DELETE("/movies/:id", handleDeleteMovie(svcs))
		adminOnly.POST("/screens", handleCreateScreen(svcs))
		adminOnly.GET("/screens", handleListScreens(svcs))
		adminOnly.DELETE("/screens/:id", handleDeleteScreen(svcs))
		adminOnly.POST("/showtimes", handleCreateShowtime(svcs))
		adminOnly.DELETE("/showtimes/:id", handleDeleteShowtime(svcs))
	}

	staff := r.Group("/admin",
		AuthMiddleware(svcs.Auth), RequireRoles(domain.RoleAdmin, domain.RoleStaff))
	{
		staff.GET("/bookings", handleListAllBookings(svcs))
		staff.GET("/reports/daily", handleDailyReport(svcs))
		staff.GET("/reports/range", handleRangeReport(svcs))
	}

	return r
}

// registerSeatValidation teaches the binding layer the "A5" seat label
// format so malformed labels fail at bind time.
func registerSeatValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("seat", func(fl validator.FieldLevel) bool {
		_, err := seatmap.ParseSeat(fl.Field().String())
		return err == nil
	})
}

// --- Handlers with Swagger annotations ---

// @Summary  Register account
// @Param    req body  RegisterRequest true "payload"
// @Success  201 {object} domain.User
// @Failure  409 {object} ErrorResponse "username taken"
// @Router   /auth/register [post]
func handleRegister(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		u, err := svcs.Auth.Register(
			c.Request.Context(),
			req.Username,
			req.Password,
			domain.Role(req.Role),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// @Summary  Login
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} TokenResponse
// @Failure  401 {object} ErrorResponse
// @Router   /auth/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		token, u, err := svcs.Auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, TokenResponse{Token: token, User: u})
	}
}

// @Summary  List movies
// @Success  200 {array} domain.Movie
// @Router   /movies [get]
func handleListMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := svcs.Query.ListMovies(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, movies, "public, max-age=60", true)
	}
}

// @Summary  Get movie
// @Param    id  path  int  true  "Movie ID"
// @Success  200 {object} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{id} [get]
func handleGetMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		m, err := svcs.Query.GetMovie(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, m, "public, max-age=60", true)
	}
}

// @Summary  List showtimes
// @Success  200 {array} domain.ShowtimeListing
// @Router   /showtimes [get]
func handleListShowtimes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := svcs.Query.ListShowtimes(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, listings, "public, max-age=30", true)
	}
}

// @Summary  Get showtime
// @Param    id  path  int  true  "Showtime ID"
// @Success  200 {object} domain.Showtime
// @Failure  404 {object} ErrorResponse
// @Router   /showtimes/{id} [get]
func handleGetShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		st, err := svcs.Query.GetShowtime(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, st, "public, max-age=30", true)
	}
}

// @Summary  Get seat availability
// @Param    id  path  int  true  "Showtime ID"
// @Success  200 {object} domain.SeatMap
// @Failure  404 {object} ErrorResponse
// @Router   /showtimes/{id}/availability [get]
func handleGetAvailability(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		sm, err := svcs.Query.Availability(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		// Availability must reflect every committed booking; never cached.
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, sm)
	}
}

// @Summary  Create booking (idempotent)
// @Param    id  path  int  true  "Showtime ID"
// @Param    req body  CreateBookingRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} domain.BookingWithSeats
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "seats already booked / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /showtimes/{id}/bookings [post]
func handleCreateBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mustClaims(c)
		if claims == nil {
			return
		}

		showtimeID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		seats, err := parseSeats(req.Seats)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(showtimeID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		b, err := svcs.Booking.Create(
			c.Request.Context(),
			claims.UserID,
			showtimeID,
			seats,
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			payload, _ := json.Marshal(b)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(payload))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, b)
	}
}

// @Summary  Get booking with seats
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200 {object} domain.BookingWithSeats
// @Failure  403 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mustClaims(c)
		if claims == nil {
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid booking id")
			return
		}

		b, err := svcs.Query.GetBooking(c.Request.Context(), id, claims.UserID, claims.Role)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// @Summary  List my bookings
// @Success  200 {array} domain.BookingSummary
// @Router   /me/bookings [get]
func handleListMyBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mustClaims(c)
		if claims == nil {
			return
		}

		out, err := svcs.Query.ListUserBookings(c.Request.Context(), claims.UserID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create movie
// @Param    req body  CreateMovieRequest true "payload"
// @Success  201 {object} CreatedResponse
// @Router   /admin/movies [post]
func handleCreateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		id, err := svcs.Catalog.CreateMovie(
			c.Request.Context(),
			req.Title,
			req.Description,
			req.DurationMin,
			req.Rating,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Delete movie
// @Param    id  path  int  true  "Movie ID"
// @Success  204
// @Router   /admin/movies/{id} [delete]
func handleDeleteMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteMovie(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Create screen
// @Param    req body  CreateScreenRequest true "payload"
// @Success  201 {object} CreatedResponse
// @Router   /admin/screens [post]
func handleCreateScreen(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateScreenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		id, err := svcs.Catalog.CreateScreen(
			c.Request.Context(),
			req.Name,
			req.TotalRows,
			req.TotalCols,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  List screens
// @Success  200 {array} domain.Screen
// @Router   /admin/screens [get]
func handleListScreens(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		screens, err := svcs.Catalog.ListScreens(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, screens)
	}
}

// @Summary  Delete screen
// @Param    id  path  int  true  "Screen ID"
// @Success  204
// @Router   /admin/screens/{id} [delete]
func handleDeleteScreen(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteScreen(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Create showtime
// @Param    req body  CreateShowtimeRequest true "payload"
// @Success  201 {object} CreatedResponse
// @Failure  409 {object} ErrorResponse "screen busy at that instant"
// @Router   /admin/showtimes [post]
func handleCreateShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateShowtimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		startTime, err := parseRFC3339(req.StartTime)
		if err != nil {
			badRequest(c, "invalid start_time (RFC3339)")
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			badRequest(c, "invalid price")
			return
		}

		id, err := svcs.Catalog.CreateShowtime(
			c.Request.Context(),
			req.MovieID,
			req.ScreenID,
			startTime,
			price,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatedResponse{ID: id})
	}
}

// @Summary  Delete showtime
// @Param    id  path  int  true  "Showtime ID"
// @Success  204
// @Router   /admin/showtimes/{id} [delete]
func handleDeleteShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteShowtime(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List all bookings
// @Success  200 {array} domain.BookingSummary
// @Router   /admin/bookings [get]
func handleListAllBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Query.ListAllBookings(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Daily occupancy and revenue report
// @Param    date  query  string  true  "Day (YYYY-MM-DD)"
// @Success  200 {array} domain.ShowtimeStat
// @Router   /admin/reports/daily [get]
func handleDailyReport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		date, err := time.Parse(dateLayout, c.Query("date"))
		if err != nil {
			badRequest(c, "invalid date (YYYY-MM-DD)")
			return
		}

		stats, err := svcs.Report.Daily(c.Request.Context(), date)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// @Summary  Range report with per-day totals
// @Param    start  query  string  true  "First day (YYYY-MM-DD)"
// @Param    end    query  string  true  "Last day, inclusive (YYYY-MM-DD)"
// @Success  200 {object} domain.RangeReport
// @Router   /admin/reports/range [get]
func handleRangeReport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, err := time.Parse(dateLayout, c.Query("start"))
		if err != nil {
			badRequest(c, "invalid start (YYYY-MM-DD)")
			return
		}

		end, err := time.Parse(dateLayout, c.Query("end"))
		if err != nil {
			badRequest(c, "invalid end (YYYY-MM-DD)")
			return
		}

		rep, err := svcs.Report.Range(c.Request.Context(), start, end)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var invalidSeat *booking.InvalidSeatError
	var dupSeat *booking.DuplicateSeatError
	var alreadyBooked *booking.SeatsAlreadyBookedError

	switch {
	// auth service
	case errors.Is(err, auth.ErrUsernameTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "username already taken"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	case errors.Is(err, auth.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role"})
		return
	// booking service
	case errors.As(err, &alreadyBooked):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: "seats already booked",
			Seats: seatLabels(alreadyBooked.Seats),
		})
		return
	case errors.As(err, &invalidSeat):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid seat",
			Seats: []string{invalidSeat.Seat.String()},
		})
		return
	case errors.As(err, &dupSeat):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "duplicate seat in request",
			Seats: []string{dupSeat.Seat.String()},
		})
		return
	case errors.Is(err, booking.ErrNoSeats):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no seats requested"})
		return
	case errors.Is(err, booking.ErrShowtimeNotFound),
		errors.Is(err, query.ErrShowtimeNotFound),
		errors.Is(err, catalog.ErrShowtimeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "showtime not found"})
		return
	case errors.Is(err, booking.ErrScreenNotFound),
		errors.Is(err, catalog.ErrScreenNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "screen not found"})
		return
	// query service
	case errors.Is(err, query.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	case errors.Is(err, query.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
		return
	// catalog service
	case errors.Is(err, catalog.ErrMovieNotFound),
		errors.Is(err, query.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	case errors.Is(err, catalog.ErrShowtimeConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "screen already has a showtime at that instant"})
		return
	case errors.Is(err, catalog.ErrEmptyTitle),
		errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidDuration),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidGrid),
		errors.Is(err, catalog.ErrTooManyRows):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	// report service
	case errors.Is(err, report.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "range end precedes start"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

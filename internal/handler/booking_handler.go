package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-platform/service-sharing/internal/application"
	bookingDomain "github.com/shareit-platform/service-sharing/internal/domain/booking"
	"github.com/shareit-platform/service-sharing/internal/middleware"
	"github.com/shareit-platform/service-sharing/internal/response"
)

// unknownStateMessage is the fixed error body for an unparseable state
// filter; clients match on it verbatim.
const unknownStateMessage = "Unknown state: UNSUPPORTED_STATUS"

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.SharerID())
	{
		bookings.POST("", h.CreateBooking)
		bookings.PATCH("/:bookingId", h.ResolveBooking)
		bookings.GET("/owner", h.GetOwnerBookings)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.GET("", h.GetBookerBookings)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), bookerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ResolveBooking handles PATCH /bookings/:bookingId?approved={bool}.
func (h *BookingHandler) ResolveBooking(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved parameter must be a boolean")
		return
	}

	result, err := h.service.ResolveBooking(c.Request.Context(), ownerID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	result, err := h.service.GetBookingByID(c.Request.Context(), requesterID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBookerBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) GetBookerBookings(c *gin.Context) {
	h.listBookings(c, h.service.GetBookerBookings)
}

// GetOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.service.GetOwnerBookings)
}

func (h *BookingHandler) listBookings(
	c *gin.Context,
	list func(ctx context.Context, actorID int64, state bookingDomain.StateFilter, from, size int) ([]application.BookingDTO, error),
) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "missing user identity"})
		return
	}

	state, err := bookingDomain.ParseStateFilter(c.DefaultQuery("state", string(bookingDomain.FilterAll)))
	if err != nil {
		response.BadRequest(c, unknownStateMessage)
		return
	}

	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := list(c.Request.Context(), actorID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parsePagination reads the from/size query parameters with the platform
// defaults; range validation happens in the pagination package.
func parsePagination(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		response.BadRequest(c, "from parameter must be an integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.BadRequest(c, "size parameter must be an integer")
		return 0, 0, false
	}
	return from, size, true
}

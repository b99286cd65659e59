package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zhufei/sports-backend/internal/model"
	"github.com/zhufei/sports-backend/internal/response"
	"github.com/zhufei/sports-backend/internal/service"
	"github.com/zhufei/sports-backend/internal/validation"
)

// BookingHandler handles booking creation (public) and booking management
// (admin-only; the router gates those routes behind RequireAdminJWT).
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create godoc
// POST /api/bookings
// Public endpoint: validates the payload, checks the course exists and
// persists the booking with a generated booking number.
func (h *BookingHandler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if ok, errs := validation.ValidateBooking(&req); !ok {
		response.FailValidation(c, http.StatusBadRequest, response.MsgInvalidBooking, errs)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusBadRequest, response.MsgCourseUnknown)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": response.MsgBookingCreated,
		"data":    booking,
	})
}

// List godoc
// GET /api/bookings?status=pending|processed
func (h *BookingHandler) List(c *gin.Context) {
	status := model.BookingStatus(c.Query("status"))

	bookings, err := h.bookingService.List(c.Request.Context(), status)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count": len(bookings),
		"data":  bookings,
	})
}

// Stats godoc
// GET /api/bookings/stats
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.bookingService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": stats})
}

// Search godoc
// GET /api/bookings/search?keyword=...
func (h *BookingHandler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		response.Fail(c, http.StatusBadRequest, response.MsgKeywordRequired)
		return
	}

	bookings, err := h.bookingService.Search(c.Request.Context(), keyword)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count": len(bookings),
		"data":  bookings,
	})
}

// Get godoc
// GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgBookingNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": booking})
}

// GetByNumber godoc
// GET /api/bookings/number/:number
// Looks a booking up by its booking number, for admins resolving a
// customer-quoted reference.
func (h *BookingHandler) GetByNumber(c *gin.Context) {
	booking, err := h.bookingService.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgBookingNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": booking})
}

// UpdateStatus godoc
// PUT /api/bookings/:id/status
// Transitions a booking between pending and processed; repeating the same
// transition is a safe no-op apart from the refreshed timestamp.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidID)
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.MsgInvalidStatus)
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.Fail(c, http.StatusBadRequest, response.MsgInvalidStatus)
		case errors.Is(err, service.ErrBookingNotFound):
			response.Fail(c, http.StatusNotFound, response.MsgBookingNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.MsgInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": response.MsgStatusUpdated,
		"data":    booking,
	})
}

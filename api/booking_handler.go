package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/appointment-booking-backend/auth"
	bk "github.com/hanksha/appointment-booking-backend/booking"
)

type BookingService interface {
	CreateBooking(ctx context.Context, ownerID string, in bk.DraftInput) (bk.Booking, error)
	ListBookings(ctx context.Context, ownerID string) ([]bk.BookingView, error)
	ModifyBooking(ctx context.Context, ownerID, id string, in bk.UpdateInput) error
	DeleteBooking(ctx context.Context, ownerID, id string) error
	ClearPastBookings(ctx context.Context) (int64, error)
	BookedDates(ctx context.Context) ([]string, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/dates", h.BookedDates)
	rg.DELETE("/past", h.ClearPast)
	rg.PUT("/:id", h.Modify)
	rg.DELETE("/:id", h.Delete)
}

func (h *BookingHandler) List(c *gin.Context) {
	identity := c.MustGet("identity").(auth.Identity)

	bookings, err := h.service.ListBookings(c.Request.Context(), identity.UserID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Create(c *gin.Context) {
	identity := c.MustGet("identity").(auth.Identity)

	var in bk.DraftInput

	if err := c.BindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), identity.UserID, in)

	if err != nil {
		c.Error(err)

		var validationErr *bk.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed.",
				"errors":  validationErr.Fields,
			})
			return
		}

		if errors.Is(err, bk.ErrSlotConflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "This time slot overlaps with an existing booking. Please choose another time.",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create booking",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Modify(c *gin.Context) {
	identity := c.MustGet("identity").(auth.Identity)
	id := c.Param("id")

	var in bk.UpdateInput

	if err := c.BindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.ModifyBooking(c.Request.Context(), identity.UserID, id, in)

	if err != nil {
		c.Error(err)

		var validationErr *bk.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed.",
				"errors":  validationErr.Fields,
			})
		} else if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking updated"})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	identity := c.MustGet("identity").(auth.Identity)
	id := c.Param("id")

	err := h.service.DeleteBooking(c.Request.Context(), identity.UserID, id)

	if err != nil {
		c.Error(err)

		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to delete booking",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

func (h *BookingHandler) ClearPast(c *gin.Context) {
	count, err := h.service.ClearPastBookings(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to clear past bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (h *BookingHandler) BookedDates(c *gin.Context) {
	dates, err := h.service.BookedDates(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve booked dates",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, dates)
}

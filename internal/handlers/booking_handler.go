package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/domain/booking"
	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/hirely-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	update   *ucBooking.UpdateStatus
	get      *ucBooking.GetBooking
	list     *ucBooking.ListBookings
	review   *ucBooking.CreateReview
	checkout *ucBooking.Checkout
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateStatus,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	review *ucBooking.CreateReview,
	checkout *ucBooking.Checkout,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		update:   update,
		get:      get,
		list:     list,
		review:   review,
		checkout: checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SeekerID   uint     `json:"seeker_id" binding:"required"`
	ProviderID uint     `json:"provider_id" binding:"required"`
	ServiceID  uint     `json:"service_id" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time" binding:"required"`
	TotalCost  *float64 `json:"total_cost" binding:"required"`
	Notes      string   `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:      middleware.ActorFrom(c),
		SeekerID:   req.SeekerID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalCost:  *req.TotalCost,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	h.transition(c, req.Status)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, string(booking.StatusCanceled))
}

func (h *BookingHandler) transition(c *gin.Context, status string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated",
		"booking": b,
	})
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	v, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, v)
}

// ListForUser serves /users/:id/bookings; SelfOrAdmin guards the route.
func (h *BookingHandler) ListForUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	rows, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	rows, err := h.list.All(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

// ======================================================
// REVIEW / CHECKOUT
// ======================================================

func (h *BookingHandler) Review(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	r, err := h.review.Execute(c.Request.Context(), ucBooking.CreateReviewInput{
		Actor:     middleware.ActorFrom(c),
		BookingID: id,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	link, err := h.checkout.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, link)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucAdmin "github.com/BruksfildServices01/hirely-api/internal/usecase/admin"
	ucBooking "github.com/BruksfildServices01/hirely-api/internal/usecase/booking"
	ucProfile "github.com/BruksfildServices01/hirely-api/internal/usecase/profile"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listUsers  *ucAdmin.ListUsers
	updateUser *ucProfile.UpdateProfile
	setStatus  *ucAdmin.SetUserStatus
	deleteUser *ucAdmin.DeleteUser
	stats      *ucAdmin.Stats
	bookings   *ucBooking.UpdateStatus
}

func NewAdminHandler(
	listUsers *ucAdmin.ListUsers,
	updateUser *ucProfile.UpdateProfile,
	setStatus *ucAdmin.SetUserStatus,
	deleteUser *ucAdmin.DeleteUser,
	stats *ucAdmin.Stats,
	bookings *ucBooking.UpdateStatus,
) *AdminHandler {
	return &AdminHandler{
		listUsers:  listUsers,
		updateUser: updateUser,
		setStatus:  setStatus,
		deleteUser: deleteUser,
		stats:      stats,
		bookings:   bookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminUpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type UserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	rows, err := h.listUsers.Execute(c.Request.Context(), user.ListFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Query:  c.Query("q"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.updateUser.Execute(c.Request.Context(), ucProfile.UpdateProfileInput{
		Actor:  middleware.ActorFrom(c),
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    u,
	})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.setStatus.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User status updated",
		"user":    u,
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ======================================================
// BOOKINGS / STATS
// ======================================================

func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	b, err := h.bookings.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated",
		"booking": b,
	})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, st)
}

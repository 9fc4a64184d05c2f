package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/hirely-api/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/hirely-api/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type ProviderHandler struct {
	register      *ucCatalog.RegisterOfferings
	offerings     *ucCatalog.ListOfferings
	manage        *ucCatalog.ManageOffering
	profile       *ucCatalog.GetProviderProfile
	updateProfile *ucCatalog.UpdateProviderProfile
	availability  *ucCatalog.CheckAvailability
	bookings      *ucBooking.ListBookings
	stats         *ucBooking.ProviderStats
}

func NewProviderHandler(
	register *ucCatalog.RegisterOfferings,
	offerings *ucCatalog.ListOfferings,
	manage *ucCatalog.ManageOffering,
	profile *ucCatalog.GetProviderProfile,
	updateProfile *ucCatalog.UpdateProviderProfile,
	availability *ucCatalog.CheckAvailability,
	bookings *ucBooking.ListBookings,
	stats *ucBooking.ProviderStats,
) *ProviderHandler {
	return &ProviderHandler{
		register:      register,
		offerings:     offerings,
		manage:        manage,
		profile:       profile,
		updateProfile: updateProfile,
		availability:  availability,
		bookings:      bookings,
		stats:         stats,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OfferingRequest struct {
	ServiceID          uint     `json:"serviceId" binding:"required"`
	HourlyRate         *float64 `json:"hourlyRate" binding:"required"`
	AvailabilityStatus string   `json:"availabilityStatus"`
	ProfessionalBio    string   `json:"professionalBio"`
}

type RegisterServicesRequest struct {
	ProviderID uint              `json:"providerId" binding:"required"`
	Services   []OfferingRequest `json:"services" binding:"required,dive"`
}

type UpdateOfferingRequest struct {
	HourlyRate         *float64 `json:"hourlyRate"`
	AvailabilityStatus *string  `json:"availabilityStatus"`
	ProfessionalBio    *string  `json:"professionalBio"`
}

type UpdateProviderProfileRequest struct {
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	Address    *string  `json:"address"`
	Bio        *string  `json:"bio"`
	HourlyRate *float64 `json:"hourlyRate"`
}

// ======================================================
// OFFERINGS
// ======================================================

func (h *ProviderHandler) RegisterServices(c *gin.Context) {
	var req RegisterServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	in := ucCatalog.RegisterInput{
		Actor:      middleware.ActorFrom(c),
		ProviderID: req.ProviderID,
		Services:   make([]ucCatalog.OfferingInput, 0, len(req.Services)),
	}
	for _, s := range req.Services {
		in.Services = append(in.Services, ucCatalog.OfferingInput{
			ServiceID:          s.ServiceID,
			HourlyRate:         *s.HourlyRate,
			AvailabilityStatus: s.AvailabilityStatus,
			ProfessionalBio:    s.ProfessionalBio,
		})
	}

	rows, err := h.register.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Services registered successfully",
		"services": rows,
	})
}

func (h *ProviderHandler) ListServices(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	rows, err := h.offerings.Execute(c.Request.Context(), catalog.OfferingFilter{ProviderID: providerID})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *ProviderHandler) UpdateService(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	offeringID, ok := paramID(c, "serviceRowId")
	if !ok {
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ps, err := h.manage.Update(c.Request.Context(), ucCatalog.UpdateOfferingInput{
		Actor:              middleware.ActorFrom(c),
		ProviderID:         providerID,
		OfferingID:         offeringID,
		HourlyRate:         req.HourlyRate,
		AvailabilityStatus: req.AvailabilityStatus,
		ProfessionalBio:    req.ProfessionalBio,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ps)
}

func (h *ProviderHandler) DeleteService(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	offeringID, ok := paramID(c, "serviceRowId")
	if !ok {
		return
	}

	if err := h.manage.Delete(c.Request.Context(), middleware.ActorFrom(c), providerID, offeringID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}

// ======================================================
// PROFILE
// ======================================================

func (h *ProviderHandler) Profile(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.profile.Execute(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	p.Services = nonNil(p.Services)
	httpresp.OK(c, p)
}

func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateProviderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), ucCatalog.UpdateProviderProfileInput{
		Actor:      middleware.ActorFrom(c),
		ProviderID: providerID,
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

func (h *ProviderHandler) Availability(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	available, err := h.availability.Execute(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *ProviderHandler) Bookings(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	rows, err := h.bookings.ForProvider(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *ProviderHandler) Stats(c *gin.Context) {
	providerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	st, err := h.stats.Execute(c.Request.Context(), providerID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, st)
}

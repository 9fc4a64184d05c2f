package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/domain/catalog"
	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/hirely-api/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	listServices *ucCatalog.ListServices
	manage       *ucCatalog.ManageServices
	offerings    *ucCatalog.ListOfferings
	providers    *ucCatalog.ListProvidersByService
}

func NewCatalogHandler(
	listServices *ucCatalog.ListServices,
	manage *ucCatalog.ManageServices,
	offerings *ucCatalog.ListOfferings,
	providers *ucCatalog.ListProvidersByService,
) *CatalogHandler {
	return &CatalogHandler{
		listServices: listServices,
		manage:       manage,
		offerings:    offerings,
		providers:    providers,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r ServiceRequest) input() ucCatalog.ServiceInput {
	return ucCatalog.ServiceInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Image:       r.Image,
	}
}

// ======================================================
// PUBLIC
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	rows, err := h.listServices.Execute(c.Request.Context(), strings.TrimSpace(c.Query("name")))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *CatalogHandler) ListOfferings(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId")
	if !ok {
		return
	}

	rows, err := h.offerings.Execute(c.Request.Context(), catalog.OfferingFilter{ServiceID: serviceID})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Array(c, rows)
}

func (h *CatalogHandler) ProvidersByService(c *gin.Context) {
	serviceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	cards, err := h.providers.Execute(c.Request.Context(), serviceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"providers": nonNil(cards),
	})
}

// ======================================================
// ADMIN
// ======================================================

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.manage.Create(c.Request.Context(), middleware.ActorFrom(c).UserID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.manage.Update(c.Request.Context(), middleware.ActorFrom(c).UserID, id, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.manage.Delete(c.Request.Context(), middleware.ActorFrom(c).UserID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

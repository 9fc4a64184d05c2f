package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/imaging"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucProfile "github.com/BruksfildServices01/hirely-api/internal/usecase/profile"
)

type UserHandler struct {
	getProfile     *ucProfile.GetProfile
	updateProfile  *ucProfile.UpdateProfile
	uploadImage    *ucProfile.UploadImage
	getSettings    *ucProfile.GetSettings
	updateSettings *ucProfile.UpdateSettings
}

func NewUserHandler(
	getProfile *ucProfile.GetProfile,
	updateProfile *ucProfile.UpdateProfile,
	uploadImage *ucProfile.UploadImage,
	getSettings *ucProfile.GetSettings,
	updateSettings *ucProfile.UpdateSettings,
) *UserHandler {
	return &UserHandler{
		getProfile:     getProfile,
		updateProfile:  updateProfile,
		uploadImage:    uploadImage,
		getSettings:    getSettings,
		updateSettings: updateSettings,
	}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
}

type UpdateSettingsRequest struct {
	Email         *string                  `json:"email"`
	Notifications *ucProfile.Notifications `json:"notifications"`
	Language      *string                  `json:"language"`
}

// --------- Profile ---------

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	u, err := h.getProfile.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), ucProfile.UpdateProfileInput{
		Actor:   middleware.ActorFrom(c),
		UserID:  id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Bio:     req.Bio,
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

func (h *UserHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Image must be JPEG, PNG, GIF or WebP")
		return
	}
	if fh.Size > imaging.MaxUpload {
		httperr.BadRequest(c, "image_too_large", "Image must be 5 MB or smaller")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	url, err := h.uploadImage.Execute(c.Request.Context(), middleware.ActorFrom(c), id, f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Profile image updated",
		"profilePic": url,
	})
}

// --------- Settings ---------

func (h *UserHandler) GetSettings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.getSettings.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.updateSettings.Execute(c.Request.Context(), ucProfile.UpdateSettingsInput{
		Actor:         middleware.ActorFrom(c),
		UserID:        id,
		Email:         req.Email,
		Notifications: req.Notifications,
		Language:      req.Language,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, s)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/httpresp"
	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	ucProfile "github.com/BruksfildServices01/hirely-api/internal/usecase/profile"
)

type MeHandler struct {
	profile *ucProfile.GetProfile
}

func NewMeHandler(profile *ucProfile.GetProfile) *MeHandler {
	return &MeHandler{profile: profile}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	u, err := h.profile.Execute(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

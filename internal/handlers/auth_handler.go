package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/middleware"
	"github.com/BruksfildServices01/hirely-api/internal/models"
	ucAuth "github.com/BruksfildServices01/hirely-api/internal/usecase/auth"
)

type AuthHandler struct {
	signup         *ucAuth.Signup
	login          *ucAuth.Login
	logout         *ucAuth.Logout
	changePassword *ucAuth.ChangePassword
	seedAdmin      *ucAuth.SeedAdmin
	roles          *ucAuth.ListSignupRoles
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
	logout *ucAuth.Logout,
	changePassword *ucAuth.ChangePassword,
	seedAdmin *ucAuth.SeedAdmin,
	roles *ucAuth.ListSignupRoles,
) *AuthHandler {
	return &AuthHandler{
		signup:         signup,
		login:          login,
		logout:         logout,
		changePassword: changePassword,
		seedAdmin:      seedAdmin,
		roles:          roles,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type SeedAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// --------- Responses ---------

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"profilePic": u.ProfilePic,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  u.ID,
		"role":    u.Role,
		"user":    userSummary(u),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	res, ok := h.doLogin(c, ucAuth.ScopeMember)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userSummary(res.User),
		"token":   res.Token,
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	res, ok := h.doLogin(c, ucAuth.ScopeAdmin)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"admin":   userSummary(res.User),
		"token":   res.Token,
	})
}

func (h *AuthHandler) doLogin(c *gin.Context, scope ucAuth.Scope) (*ucAuth.LoginResult, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return nil, false
	}

	res, err := h.login.Execute(c.Request.Context(), scope, ucAuth.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return res, true
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), c.GetString(middleware.ContextSessionID)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	err := h.changePassword.Execute(c.Request.Context(), ucAuth.ChangePasswordInput{
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func (h *AuthHandler) SeedAdmin(c *gin.Context) {
	var req SeedAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	u, err := h.seedAdmin.Execute(c.Request.Context(), ucAuth.SeedAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Secret:   req.Secret,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created",
		"admin":   userSummary(u),
	})
}

func (h *AuthHandler) Roles(c *gin.Context) {
	roles, err := h.roles.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if roles == nil {
		roles = []models.Role{}
	}
	c.JSON(http.StatusOK, roles)
}

package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahayognepal/charity-backend/internal/auditlog"
)

type Handler struct {
	svc   Service
	audit auditlog.Service
}

func NewHandler(svc Service, audit auditlog.Service) *Handler {
	return &Handler{svc: svc, audit: audit}
}

// clientIP prefers the address captured by the audit middleware and
// falls back to gin's own resolution.
func clientIP(c *gin.Context) string {
	if ip := c.GetString("client_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

type registerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Country  string `json:"country"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.Register(RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
	})
	if err != nil {
		h.audit.LogAction(c.Request.Context(), nil, "auth.register",
			map[string]interface{}{"email": req.Email, "error": err.Error()}, clientIP(c), "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.audit.LogAction(c.Request.Context(), nil, "auth.register",
		map[string]interface{}{"email": req.Email}, clientIP(c), "success")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created, you can sign in now",
		"success": true,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, user, err := h.svc.Login(LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.audit.LogAction(c.Request.Context(), nil, "auth.login",
			map[string]interface{}{"email": req.Email}, clientIP(c), "failure")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.audit.LogAction(c.Request.Context(), &user.ID, "auth.login", nil, clientIP(c), "success")

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"tokens": tokens,
			"user":   user,
		},
		"success": true,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"accessToken": accessToken},
		"success": true,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.RequestPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reset link sent if the account exists",
		"success": true,
	})
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.audit.LogAction(c.Request.Context(), nil, "auth.reset_password", nil, clientIP(c), "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.audit.LogAction(c.Request.Context(), nil, "auth.reset_password", nil, clientIP(c), "success")

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated, you can sign in now",
		"success": true,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
		"success": true,
	})
}

// Me returns the signed-in user's profile, role included.
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    user,
		"success": true,
	})
}

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
	Country  *string `json:"country"`
}

// UpdateMe edits the mutable profile fields of the signed-in user.
func (h *Handler) UpdateMe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.UpdateProfile(user.ID, req.FullName, req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    updated,
		"success": true,
	})
}

// CurrentUser pulls the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return User{}, false
	}
	user, ok := val.(User)
	return user, ok
}

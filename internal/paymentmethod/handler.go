package paymentmethod

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListPublic handles GET /api/payment-methods: active methods only,
// ordered for display.
func (h *Handler) ListPublic(c *gin.Context) {
	methods, err := h.svc.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payment methods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": methods, "success": true})
}

// ListAll handles GET /api/admin/payment-methods.
func (h *Handler) ListAll(c *gin.Context) {
	methods, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payment methods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": methods, "success": true})
}

// Create handles POST /api/admin/payment-methods (multipart form so a
// QR image can ride along).
func (h *Handler) Create(c *gin.Context) {
	input := CreateInput{
		MethodName:     c.PostForm("method_name"),
		MethodType:     c.PostForm("method_type"),
		AccountDetails: []byte(c.PostForm("account_details")),
	}

	if v := c.PostForm("display_order"); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid display_order"})
			return
		}
		input.DisplayOrder = order
	}
	if v := c.PostForm("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_active"})
			return
		}
		input.IsActive = &active
	}
	if file, err := c.FormFile("qr_image"); err == nil {
		input.QRImage = file
	}

	method, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": method, "success": true})
}

// Update handles PUT /api/admin/payment-methods/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method id"})
		return
	}

	var input UpdateInput
	if v, ok := c.GetPostForm("method_name"); ok {
		input.MethodName = &v
	}
	if v, ok := c.GetPostForm("method_type"); ok {
		input.MethodType = &v
	}
	if v, ok := c.GetPostForm("account_details"); ok {
		input.AccountDetails = []byte(v)
	}
	if v, ok := c.GetPostForm("display_order"); ok {
		order, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid display_order"})
			return
		}
		input.DisplayOrder = &order
	}
	if file, err := c.FormFile("qr_image"); err == nil {
		input.QRImage = file
	}

	method, err := h.svc.Update(c.Request.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": method, "success": true})
}

type toggleRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// Toggle handles PATCH /api/admin/payment-methods/:id/active.
func (h *Handler) Toggle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method id"})
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	method, err := h.svc.SetActive(c.Request.Context(), uint(id), *req.IsActive)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment method"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": method, "success": true})
}

// Delete handles DELETE /api/admin/payment-methods/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payment method"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}, "success": true})
}

package donation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sahayognepal/charity-backend/internal/auditlog"
	"github.com/sahayognepal/charity-backend/internal/auth"
	"github.com/sahayognepal/charity-backend/middleware"
)

type Handler struct {
	svc   Service
	audit auditlog.Service
}

func NewHandler(svc Service, audit auditlog.Service) *Handler {
	return &Handler{svc: svc, audit: audit}
}

// Submit handles POST /api/donations. Anonymous donors are allowed;
// signed-in donors get the donation attached to their account.
func (h *Handler) Submit(c *gin.Context) {
	input := SubmitInput{
		Amount:        c.PostForm("amount"),
		Currency:      c.PostForm("currency"),
		DonorName:     c.PostForm("donor_name"),
		DonorEmail:    c.PostForm("donor_email"),
		DonorCountry:  c.PostForm("donor_country"),
		PaymentMethod: c.PostForm("payment_method"),
		Notes:         c.PostForm("notes"),
	}
	if file, err := c.FormFile("receipt_image"); err == nil {
		input.Receipt = file
	}

	var userID *uint
	if user, ok := auth.CurrentUser(c); ok {
		userID = &user.ID
		input.UserID = userID
	}

	d, err := h.svc.Submit(c.Request.Context(), input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUpload) {
			status = http.StatusBadGateway
		}
		h.audit.LogAction(c.Request.Context(), userID, "donation.submit",
			map[string]interface{}{"error": err.Error()},
			middleware.GetIPFromContext(c), "failure")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.audit.LogAction(c.Request.Context(), userID, "donation.submit",
		map[string]interface{}{"donation_id": d.ID, "amount": d.Amount, "currency": d.Currency},
		middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusCreated, gin.H{"data": d, "success": true})
}

// TopDonors handles GET /api/donors/top.
func (h *Handler) TopDonors(c *gin.Context) {
	donors, err := h.svc.TopDonors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch top donors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": donors, "success": true})
}

// MyDonations handles GET /api/me/donations.
func (h *Handler) MyDonations(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	donations, stats, err := h.svc.MyDonations(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"donations": donations, "stats": stats},
		"success": true,
	})
}

// Receipt handles GET /api/donations/:id/receipt. The donation's owner
// or an admin may download it.
func (h *Handler) Receipt(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	d, err := h.svc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donation"})
		return
	}
	if !user.IsAdmin() && (d.UserID == nil || *d.UserID != user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	pdf, err := h.svc.ReceiptPDF(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=donation-receipt-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ListPending handles GET /api/admin/donations/pending, newest first.
func (h *Handler) ListPending(c *gin.Context) {
	donations, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch pending donations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": donations, "success": true})
}

// List handles GET /api/admin/donations with optional status filter.
func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	filter.Status = c.Query("status")
	if filter.Status != "" &&
		filter.Status != StatusPending &&
		filter.Status != StatusVerified &&
		filter.Status != StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result, "success": true})
}

// Get handles GET /api/admin/donations/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	d, err := h.svc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch donation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": d, "success": true})
}

// Verify handles POST /api/admin/donations/:id/verify.
func (h *Handler) Verify(c *gin.Context) {
	h.transition(c, StatusVerified)
}

// Reject handles POST /api/admin/donations/:id/reject.
func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, StatusRejected)
}

func (h *Handler) transition(c *gin.Context, newStatus string) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
		return
	}

	action := "donation.verify"
	var d *Donation
	if newStatus == StatusVerified {
		d, err = h.svc.Verify(c.Request.Context(), uint(id), &user)
	} else {
		action = "donation.reject"
		d, err = h.svc.Reject(c.Request.Context(), uint(id), &user)
	}

	if err != nil {
		h.audit.LogAction(c.Request.Context(), &user.ID, action,
			map[string]interface{}{"donation_id": id, "error": err.Error()},
			middleware.GetIPFromContext(c), "failure")

		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
		case errors.Is(err, ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{"error": "donation has already been processed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update donation"})
		}
		return
	}

	h.audit.LogAction(c.Request.Context(), &user.ID, action,
		map[string]interface{}{"donation_id": d.ID, "amount": d.Amount},
		middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusOK, gin.H{"data": d, "success": true})
}

// Dashboard handles GET /api/admin/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats, "success": true})
}

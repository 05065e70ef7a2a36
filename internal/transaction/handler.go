package transaction

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahayognepal/charity-backend/internal/auth"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/transactions (public transparency ledger).
func (h *Handler) List(c *gin.Context) {
	transactions, err := h.svc.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch ledger summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    gin.H{"transactions": transactions, "summary": summary},
		"success": true,
	})
}

type createRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency"`
	Description string  `json:"description" binding:"required,notblank"`
	Category    string  `json:"category"`
	OccurredAt  string  `json:"occurred_at"`
}

// Create handles POST /api/admin/transactions.
func (h *Handler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type, amount and description are required"})
		return
	}

	input := CreateInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Category:    req.Category,
		RecordedBy:  user.ID,
	}
	if req.OccurredAt != "" {
		occurredAt, err := time.Parse("2006-01-02", req.OccurredAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurred_at, expected YYYY-MM-DD"})
			return
		}
		input.OccurredAt = &occurredAt
	}

	t, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": t, "success": true})
}

package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sahayognepal/charity-backend/internal/donation"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func validStatus(status string) bool {
	switch status {
	case "", donation.StatusPending, donation.StatusVerified, donation.StatusRejected:
		return true
	}
	return false
}

// ExportDonations handles GET /api/admin/reports/donations?format=csv|excel.
func (h *Handler) ExportDonations(c *gin.Context) {
	status := c.Query("status")
	if !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.svc.DonationsCSV(c.Request.Context(), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export donations"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=donations-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", data)
	case "excel":
		data, err := h.svc.DonationsExcel(c.Request.Context(), status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export donations"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=donations-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or excel"})
	}
}

// ExportLedger handles GET /api/admin/reports/ledger (PDF).
func (h *Handler) ExportLedger(c *gin.Context) {
	data, err := h.svc.LedgerPDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export ledger"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ledger-%s.pdf", time.Now().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", data)
}

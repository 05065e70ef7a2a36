package ourwork

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListPublished handles GET /api/our-work (public).
func (h *Handler) ListPublished(c *gin.Context) {
	items, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch work items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "success": true})
}

// ListAll handles GET /api/admin/our-work.
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch work items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "success": true})
}

// Create handles POST /api/admin/our-work (multipart for the image).
func (h *Handler) Create(c *gin.Context) {
	input := CreateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
	}
	if v := c.PostForm("is_published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_published"})
			return
		}
		input.IsPublished = &published
	}
	if v := c.PostForm("display_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid display_date, expected YYYY-MM-DD"})
			return
		}
		input.DisplayDate = &date
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}

	item, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": item, "success": true})
}

// Update handles PUT /api/admin/our-work/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work item id"})
		return
	}

	var input UpdateInput
	if v, ok := c.GetPostForm("title"); ok {
		input.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		input.Location = &v
	}
	if v, ok := c.GetPostForm("is_published"); ok {
		published, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid is_published"})
			return
		}
		input.IsPublished = &published
	}
	if v, ok := c.GetPostForm("display_date"); ok {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid display_date, expected YYYY-MM-DD"})
			return
		}
		input.DisplayDate = &date
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}

	item, err := h.svc.Update(c.Request.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "work item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item, "success": true})
}

// Delete handles DELETE /api/admin/our-work/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work item id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "work item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete work item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}, "success": true})
}

package dashboard

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /dashboard/submissions?search=...&start=...&end=...
// --------------------------------------------------
//

func (h *Handler) ListSubmissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if search := c.Query("search"); search != "" {
			subs, err := h.service.Search(ctx, search)
			respondList(c, subs, err)
			return
		}

		start, end := c.Query("start"), c.Query("end")
		if start != "" || end != "" {
			startDate, err1 := time.ParseInLocation("2006-01-02", start, time.UTC)
			endDate, err2 := time.ParseInLocation("2006-01-02", end, time.UTC)
			if err1 != nil || err2 != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
				return
			}

			subs, err := h.service.FilterByEventDate(ctx, startDate, endDate)
			if errors.Is(err, ErrBadDateRange) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			respondList(c, subs, err)
			return
		}

		subs, err := h.service.List(ctx)
		respondList(c, subs, err)
	}
}

func respondList(c *gin.Context, subs []*submission.Submission, err error) {
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load submissions"})
		return
	}
	if subs == nil {
		subs = []*submission.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

//
// --------------------------------------------------
// PATCH /dashboard/submissions/:id/reviewed
// --------------------------------------------------
//

func (h *Handler) SetReviewed() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reviewed *bool `json:"reviewed"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Reviewed == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reviewed flag required"})
			return
		}

		err := h.service.SetReviewed(c.Request.Context(), c.Param("id"), *req.Reviewed)
		if errors.Is(err, submission.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not update submission"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "reviewed": *req.Reviewed})
	}
}

//
// --------------------------------------------------
// GET /dashboard/stats
// --------------------------------------------------
//

func (h *Handler) GetStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := h.service.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

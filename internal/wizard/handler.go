package wizard

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

// Exporter runs the PDF/persist/email sequence for a finished session.
type Exporter interface {
	Export(
		ctx context.Context,
		details intake.Details,
		selections map[catalog.Category][]string,
		notes string,
	) (*submission.Submission, []byte, error)
}

// PDFNamer builds the download file name for a generated quote.
type PDFNamer func(sub *submission.Submission) string

type Handler struct {
	store    *Store
	catalog  catalog.Catalog
	exporter Exporter
	pdfName  PDFNamer
	now      func() time.Time
}

func NewHandler(store *Store, c catalog.Catalog, exporter Exporter, pdfName PDFNamer) *Handler {
	return &Handler{
		store:    store,
		catalog:  c,
		exporter: exporter,
		pdfName:  pdfName,
		now:      time.Now,
	}
}

//
// --------------------------------------------------
// POST /sessions
// --------------------------------------------------
//

func (h *Handler) CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := h.store.Create(h.catalog)

		c.JSON(http.StatusCreated, gin.H{
			"sessionId":  session.ID,
			"steps":      session.Steps(),
			"catalog":    h.catalog,
			"eventTypes": intake.EventTypes,
			"state":      stateView(session),
		})
	}
}

//
// --------------------------------------------------
// GET /sessions/:id
// --------------------------------------------------
//

func (h *Handler) GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		c.JSON(http.StatusOK, gin.H{"state": stateView(session)})
	}
}

//
// --------------------------------------------------
// POST /sessions/:id/details
// --------------------------------------------------
//

func (h *Handler) SubmitDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var form intake.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		details, fieldErrors := intake.Validate(form, h.now())
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"fieldErrors": fieldErrors})
			return
		}

		session.Lock()
		defer session.Unlock()

		session.BeginWizard(details)
		c.JSON(http.StatusOK, gin.H{"state": stateView(session)})
	}
}

//
// --------------------------------------------------
// POST /sessions/:id/items/toggle
// --------------------------------------------------
//

func (h *Handler) ToggleItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var req struct {
			Category catalog.Category `json:"category"`
			Item     string           `json:"item"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session.Lock()
		defer session.Unlock()

		err := session.Selections.Toggle(req.Category, req.Item)

		var limitErr *LimitError
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"state": stateView(session)})
		case errors.As(err, &limitErr), errors.Is(err, ErrImmutableCategory):
			// User-action rejection: state unchanged, message surfaced.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			// Unknown item/category: the UI only sends catalog values,
			// so this is a data-integrity bug.
			log.Printf("toggle rejected: session=%s category=%s item=%q: %v",
				session.ID, req.Category, req.Item, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

//
// --------------------------------------------------
// POST /sessions/:id/next | /back | /restart
// --------------------------------------------------
//

func (h *Handler) Next() gin.HandlerFunc {
	return h.navigate(func(s *Session) { s.Next() })
}

func (h *Handler) Back() gin.HandlerFunc {
	return h.navigate(func(s *Session) { s.Back() })
}

func (h *Handler) Restart() gin.HandlerFunc {
	return h.navigate(func(s *Session) { s.Restart() })
}

func (h *Handler) navigate(move func(*Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		move(session)
		c.JSON(http.StatusOK, gin.H{"state": stateView(session)})
	}
}

//
// --------------------------------------------------
// GET /sessions/:id/review
// --------------------------------------------------
//

func (h *Handler) Review() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		if session.Details == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "customer details not captured yet"})
			return
		}

		sections := make([]gin.H, 0, len(session.Steps()))
		for _, step := range session.Steps() {
			sections = append(sections, gin.H{
				"category": step.Category,
				"title":    catalog.SectionTitle(step.Category),
				"items":    session.Selections.Selected(step.Category),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"customerDetails": session.Details,
			"sections":        sections,
		})
	}
}

//
// --------------------------------------------------
// POST /sessions/:id/export
// --------------------------------------------------
//

func (h *Handler) Export() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}

		var req struct {
			Notes string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session.Lock()
		if session.Details == nil {
			session.Unlock()
			c.JSON(http.StatusConflict, gin.H{"error": "customer details not captured yet"})
			return
		}
		if !session.BeginExport() {
			session.Unlock()
			c.JSON(http.StatusConflict, gin.H{"error": "an export is already in progress for this session"})
			return
		}
		details := *session.Details
		selections := session.Selections.Snapshot()
		session.Notes = req.Notes
		session.Unlock()

		sub, pdfBytes, err := h.exporter.Export(c.Request.Context(), details, selections, req.Notes)

		session.Lock()
		session.EndExport()
		if err == nil {
			session.PDF = pdfBytes
		}
		session.Unlock()

		if err != nil {
			log.Printf("export failed: session=%s: %v", session.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not complete your submission, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"submissionId": sub.ID,
			"pdfUrl":       sub.PDFURL,
		})
	}
}

//
// --------------------------------------------------
// GET /sessions/:id/quote.pdf
// --------------------------------------------------
//

func (h *Handler) DownloadPDF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := h.session(c)
		if !ok {
			return
		}
		session.Lock()
		defer session.Unlock()

		if len(session.PDF) == 0 || session.Details == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no quote generated yet"})
			return
		}

		sub := submission.Assemble(*session.Details, session.Selections.Snapshot(), session.Notes, h.now())
		c.Header("Content-Disposition", `attachment; filename="`+h.pdfName(sub)+`"`)
		c.Data(http.StatusOK, "application/pdf", session.PDF)
	}
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func stateView(s *Session) gin.H {
	view := gin.H{
		"stage":      s.Stage,
		"step":       s.Step,
		"progress":   s.Progress(),
		"selections": s.Selections.Snapshot(),
	}
	if s.Stage == StageWizard {
		step := s.CurrentStep()
		view["stepConfig"] = step
		view["count"] = s.Selections.Count(step.Category)
	}
	if s.Details != nil {
		view["customerDetails"] = s.Details
	}
	return view
}

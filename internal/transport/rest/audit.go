package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/domain"
	"github.com/heartmarshall/safety-audits/internal/service/audit"
	"github.com/heartmarshall/safety-audits/pkg/ctxutil"
)

// auditService defines the minimal interface needed by AuditHandler.
type auditService interface {
	Submit(ctx context.Context, in audit.Input) (uuid.UUID, error)
	Progress(in audit.Input) domain.Progress
	SearchAudits(ctx context.Context, term string) ([]domain.AuditSummary, error)
	GetAudit(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)
}

// AuditHandler serves the audit REST endpoints.
type AuditHandler struct {
	svc          auditService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewAuditHandler creates an AuditHandler. Request bodies larger than
// maxBodyBytes are rejected; images travel inline so the limit is generous.
func NewAuditHandler(svc auditService, logger *slog.Logger, maxBodyBytes int64) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit"), maxBodyBytes: maxBodyBytes}
}

// Register mounts the audit routes on mux. submit wraps the write endpoint,
// typically with a rate limiter.
func (h *AuditHandler) Register(mux *http.ServeMux, submit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/audits/{type}", submit(http.HandlerFunc(h.Submit)))
	mux.HandleFunc("POST /api/audits/{type}/progress", h.Progress)
	mux.HandleFunc("GET /api/audits", h.Search)
	mux.HandleFunc("GET /api/audits/{id}", h.Get)
}

type submitResponse struct {
	ID string `json:"id"`
}

type progressResponse struct {
	Percent        int    `json:"percent"`
	CurrentSection string `json:"currentSection"`
	Complete       bool   `json:"complete"`
}

type summaryResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	AuditDate    time.Time `json:"auditDate"`
	AuditorName  string    `json:"auditorName"`
	AuditorEmail string    `json:"auditorEmail"`
	Location     string    `json:"location"`
}

type auditResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	AuditDate       time.Time        `json:"auditDate"`
	AuditorName     string           `json:"auditorName"`
	AuditorEmail    string           `json:"auditorEmail"`
	Location        string           `json:"location"`
	Observations    string           `json:"observations"`
	Recommendations string           `json:"recommendations"`
	Comments        string           `json:"comments,omitempty"`
	Signature       string           `json:"signature"`
	CreatedAt       time.Time        `json:"createdAt"`
	Fire            *fireResponse    `json:"fire,omitempty"`
	Ladder          *ladderResponse  `json:"ladder,omitempty"`
	Ratings         []ratingResponse `json:"ratings,omitempty"`
}

type fireResponse struct {
	ExtinguisherLocation string           `json:"extinguisherLocation"`
	SerialNumber         string           `json:"serialNumber"`
	ManufactureDate      string           `json:"manufactureDate"`
	ExpiryDate           string           `json:"expiryDate"`
	Type                 string           `json:"type"`
	Size                 string           `json:"size"`
	Rating               string           `json:"rating"`
	InspectionResults    map[string]*bool `json:"inspectionResults"`
	MaintenanceTagPhoto  *string          `json:"maintenanceTagPhoto"`
	OverallCondition     *string          `json:"overallCondition"`
}

type ladderResponse struct {
	LadderLocation    string           `json:"ladderLocation"`
	ReferenceNumber   string           `json:"referenceNumber"`
	Type              string           `json:"type"`
	Length            string           `json:"length"`
	Construction      string           `json:"construction"`
	Class             string           `json:"class"`
	InspectionResults []answerResponse `json:"inspectionResults"`
	OtherDefects      string           `json:"otherDefects"`
	DefectPhoto       *string          `json:"defectPhoto"`
	OverallCondition  *string          `json:"overallCondition"`
}

type answerResponse struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Answer     *bool  `json:"answer"`
}

type ratingResponse struct {
	Area   string `json:"area"`
	Rating *int   `json:"rating"`
	Label  string `json:"label"`
}

// Submit handles POST /api/audits/{type}.
func (h *AuditHandler) Submit(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	id, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err, msgSubmitFailed)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{ID: id.String()})
}

// Progress handles POST /api/audits/{type}/progress.
func (h *AuditHandler) Progress(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	p := h.svc.Progress(in)
	writeJSON(w, http.StatusOK, progressResponse{
		Percent:        p.Percent,
		CurrentSection: p.CurrentSection,
		Complete:       p.Complete,
	})
}

// Search handles GET /api/audits?q=term.
func (h *AuditHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SearchAudits(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, r, err, msgReadFailed)
		return
	}

	out := make([]summaryResponse, 0, len(result))
	for _, s := range result {
		out = append(out, summaryResponse{
			ID:           s.ID.String(),
			Type:         s.Type.String(),
			AuditDate:    s.AuditDate,
			AuditorName:  s.AuditorName,
			AuditorEmail: s.AuditorEmail,
			Location:     s.LocationName,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/audits/{id}.
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid audit id")
		return
	}

	rec, err := h.svc.GetAudit(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, msgReadFailed)
		return
	}

	writeJSON(w, http.StatusOK, toAuditResponse(rec))
}

func (h *AuditHandler) decodeInput(w http.ResponseWriter, r *http.Request) (audit.Input, bool) {
	in, err := audit.NewInput(domain.AuditType(r.PathValue("type")))
	if err != nil {
		h.handleError(w, r, err, msgSubmitFailed)
		return nil, false
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return in, true
}

// Fallback messages for errors that are neither validation nor storage.
const (
	msgSubmitFailed = "failed to submit audit, please try again"
	msgReadFailed   = "failed to load audits, please try again"
)

// handleError maps service errors to responses; fallback is the message for
// unexpected failures.
func (h *AuditHandler) handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *domain.ValidationError
	var dbErr *domain.DatabaseError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "audit not found")
	case errors.As(err, &dbErr):
		h.log.ErrorContext(r.Context(), "database error",
			slog.String("error", err.Error()),
			slog.String("code", dbErr.Code),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "database error")
	default:
		h.log.ErrorContext(r.Context(), "audit request failed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func toAuditResponse(rec *domain.AuditRecord) auditResponse {
	out := auditResponse{
		ID:              rec.Audit.ID.String(),
		Type:            rec.Audit.Type.String(),
		AuditDate:       rec.Audit.AuditDate,
		AuditorName:     rec.Auditor.Name,
		AuditorEmail:    rec.Auditor.Email,
		Location:        rec.Location.Name,
		Observations:    rec.Audit.Observations,
		Recommendations: rec.Audit.Recommendations,
		Comments:        rec.Audit.Comments,
		Signature:       rec.Audit.Signature,
		CreatedAt:       rec.Audit.CreatedAt,
	}

	if f := rec.Fire; f != nil {
		results := make(map[string]*bool, len(f.Inspection))
		for id, o := range f.Inspection {
			results[id] = o.Bool()
		}
		out.Fire = &fireResponse{
			ExtinguisherLocation: f.ExtinguisherLocation,
			SerialNumber:         f.SerialNumber,
			ManufactureDate:      f.ManufactureDate.Format("01/2006"),
			ExpiryDate:           f.ExpiryDate.Format("01/2006"),
			Type:                 f.ExtinguisherType,
			Size:                 f.Size,
			Rating:               f.Rating,
			InspectionResults:    results,
			MaintenanceTagPhoto:  f.MaintenanceTagPhotoURL,
			OverallCondition:     conditionString(f.OverallCondition),
		}
	}

	if l := rec.Ladder; l != nil {
		answers := make([]answerResponse, 0, len(l.Answers))
		for _, a := range l.Answers {
			answers = append(answers, answerResponse{
				QuestionID: a.QuestionID,
				Question:   a.QuestionText,
				Answer:     a.Outcome.Bool(),
			})
		}
		out.Ladder = &ladderResponse{
			LadderLocation:    l.LadderLocation,
			ReferenceNumber:   l.ReferenceNumber,
			Type:              l.LadderType,
			Length:            l.Length,
			Construction:      l.Construction,
			Class:             l.Class,
			InspectionResults: answers,
			OtherDefects:      l.OtherDefects,
			DefectPhoto:       l.DefectPhotoURL,
			OverallCondition:  conditionString(l.OverallCondition),
		}
	}

	for _, r := range rec.Ratings {
		out.Ratings = append(out.Ratings, ratingResponse{Area: r.AreaName, Rating: r.Rating, Label: domain.RatingLabel(r.Rating)})
	}

	return out
}

func conditionString(c *domain.Condition) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

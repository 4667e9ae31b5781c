package importcsv

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/importer"
	"github.com/MrJamesThe3rd/condo/internal/importer/bank"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

const maxUpload = 10 << 20

type Importer interface {
	Preview(ctx context.Context, tenantID uuid.UUID, r io.Reader) ([]importer.Preview, error)
	Import(ctx context.Context, tenantID uuid.UUID, actorID *uuid.UUID, r io.Reader) (*importer.Result, error)
}

type Handler struct {
	svc Importer
}

func NewHandler(svc Importer) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/preview", h.preview)
}

type movementResponse struct {
	Row         int             `json:"row"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        category.Type   `json:"type"`
}

type previewResponse struct {
	movementResponse
	UnitID *uuid.UUID `json:"unit_id"`
}

type rejectionResponse struct {
	movementResponse
	Code string `json:"code"`
}

type importResponse struct {
	Posted    []uuid.UUID         `json:"posted"`
	Unmatched []movementResponse  `json:"unmatched"`
	Rejected  []rejectionResponse `json:"rejected"`
	Skipped   int                 `json:"skipped"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	scope, file, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.svc.Import(r.Context(), scope.TenantID, &scope.ActorID, file)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := importResponse{
		Posted:    res.Posted,
		Unmatched: make([]movementResponse, len(res.Unmatched)),
		Rejected:  make([]rejectionResponse, len(res.Rejected)),
		Skipped:   res.Skipped,
	}

	if resp.Posted == nil {
		resp.Posted = []uuid.UUID{}
	}

	for i, m := range res.Unmatched {
		resp.Unmatched[i] = toMovement(m)
	}

	for i, rj := range res.Rejected {
		resp.Rejected[i] = rejectionResponse{movementResponse: toMovement(rj.Movement), Code: rj.Code}
	}

	render.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	scope, file, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	previews, err := h.svc.Preview(r.Context(), scope.TenantID, file)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]previewResponse, len(previews))
	for i, p := range previews {
		resp[i] = previewResponse{movementResponse: toMovement(p.Movement), UnitID: p.UnitID}
	}

	render.JSON(w, http.StatusOK, resp)
}

// upload reads the "file" multipart field. It writes the error response
// itself and reports false when the request cannot proceed.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) (tenant.Scope, io.ReadCloser, bool) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return tenant.Scope{}, nil, false
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		render.BadRequest(w, "failed to parse form: "+err.Error())
		return tenant.Scope{}, nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		render.BadRequest(w, "file field is required")
		return tenant.Scope{}, nil, false
	}

	return scope, file, true
}

func toMovement(m bank.Movement) movementResponse {
	return movementResponse{
		Row:         m.Row,
		Date:        m.Date.Format(time.DateOnly),
		Description: m.Description,
		Reference:   m.Reference,
		Amount:      m.Amount,
		Type:        m.Type,
	}
}

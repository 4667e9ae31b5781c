package matching

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Matcher interface {
	Suggest(ctx context.Context, tenantID uuid.UUID, rawDescription string) (uuid.UUID, bool, error)
	Learn(ctx context.Context, tenantID uuid.UUID, pattern string, unitID uuid.UUID) error
}

type Handler struct {
	svc Matcher
}

func NewHandler(svc Matcher) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	RawDescription string     `json:"raw_description"`
	UnitID         *uuid.UUID `json:"unit_id"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	rawDesc := r.URL.Query().Get("raw_description")
	if rawDesc == "" {
		render.BadRequest(w, "raw_description query parameter is required")
		return
	}

	unitID, ok, err := h.svc.Suggest(r.Context(), scope.TenantID, rawDesc)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := suggestResponse{RawDescription: rawDesc}
	if ok {
		resp.UnitID = &unitID
	}

	render.JSON(w, http.StatusOK, resp)
}

type learnRequest struct {
	RawPattern string    `json:"raw_pattern" validate:"required,max=200"`
	UnitID     uuid.UUID `json:"unit_id" validate:"required"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req learnRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	if err := h.svc.Learn(r.Context(), scope.TenantID, req.RawPattern, req.UnitID); err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

package category

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/condo/internal/category"
	"github.com/MrJamesThe3rd/condo/internal/http/render"
	"github.com/MrJamesThe3rd/condo/internal/tenant"
)

type Categories interface {
	List(ctx context.Context, tenantID uuid.UUID, filter category.ListFilter) ([]*category.Category, error)
	Create(ctx context.Context, tenantID uuid.UUID, params category.CreateParams) (*category.Category, error)
}

type Handler struct {
	svc Categories
}

func NewHandler(svc Categories) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type categoryResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name" validate:"required,max=100"`
	Type            category.Type    `json:"type" validate:"required,oneof=income expense"`
	Purpose         category.Purpose `json:"purpose"`
	IsCommonExpense bool             `json:"is_common_expense"`
	IsSystem        bool             `json:"is_system"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            c.Type,
		Purpose:         c.Purpose,
		IsCommonExpense: c.IsCommonExpense,
		IsSystem:        c.IsSystem(),
		CreatedAt:       c.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var filter category.ListFilter
	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(category.Type(s))
	}

	if s := r.URL.Query().Get("purpose"); s != "" {
		filter.Purpose = new(category.Purpose(s))
	}

	cats, err := h.svc.List(r.Context(), scope.TenantID, filter)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	render.JSON(w, http.StatusOK, resp)
}

type createCategoryRequest struct {
	Name            string           `json:"name" validate:"required,max=100"`
	Type            category.Type    `json:"type" validate:"required,oneof=income expense"`
	Purpose         category.Purpose `json:"purpose"`
	IsCommonExpense bool             `json:"is_common_expense"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromContext(r.Context())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	var req createCategoryRequest
	if err := render.Decode(r, &req); err != nil {
		render.BadRequest(w, err.Error())
		return
	}

	c, err := h.svc.Create(r.Context(), scope.TenantID, category.CreateParams(req))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, toResponse(c))
}

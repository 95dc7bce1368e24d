package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	ListCategories(householdID string) ([]*Category, error)
	CreateCategory(householdID string, dto CreateCategoryDTO) (*Category, error)
	DeleteCategory(id, householdID string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	categories, err := h.Service.ListCategories(member.HouseholdID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateCategory(member.HouseholdID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	if err := h.Service.DeleteCategory(chi.URLParam(r, "id"), member.HouseholdID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

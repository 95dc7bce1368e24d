package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	SetBudget(householdID string, dto SetBudgetDTO) (*Budget, error)
	ListForMonth(householdID string, month time.Time) ([]*Budget, error)
	DeleteBudget(id, householdID string) error
	CopyBudgets(householdID string, dto CopyBudgetsDTO) ([]*Budget, error)
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

func (h *Handler) SetBudget(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	var dto SetBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SetBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upserted, err := h.Service.SetBudget(member.HouseholdID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, upserted)
}

// ListBudgets serves the budgets of one month, picked with ?month=2026-06.
func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	month, err := transport.ParseMonthParam(r, "month")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid month, expected YYYY-MM")
		return
	}

	budgets, err := h.Service.ListForMonth(member.HouseholdID, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, budgets)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	if err := h.Service.DeleteBudget(chi.URLParam(r, "id"), member.HouseholdID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CopyBudgets(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	var dto CopyBudgetsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CopyBudgets: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	copied, err := h.Service.CopyBudgets(member.HouseholdID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, copied)
}

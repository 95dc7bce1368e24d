package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/ledger"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	CreateExpense(memberID, householdID string, dto CreateExpenseDTO) (*Expense, error)
	GetExpense(id, householdID string) (*Expense, error)
	ListExpenses(householdID string) ([]*Expense, error)
	UpdateExpense(id, householdID string, dto UpdateExpenseDTO) (*Expense, error)
	DeleteExpense(id, householdID string) error
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

// expenseLine is a list item annotated with the signed share from the acting
// member's viewpoint, so the client can render "you owe" / "they owe you".
type expenseLine struct {
	*Expense
	YourShare float64 `json:"your_share"`
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateExpense(member.ID, member.HouseholdID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	expenses, err := h.Service.ListExpenses(member.HouseholdID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	lines := make([]expenseLine, len(expenses))
	for i, e := range expenses {
		lines[i] = expenseLine{
			Expense:   e,
			YourShare: ledger.ShareOf(ToDataModel(e), member.ID),
		}
	}

	h.WriteJSON(w, http.StatusOK, lines)
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	found, err := h.Service.GetExpense(chi.URLParam(r, "id"), member.HouseholdID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenseLine{
		Expense:   found,
		YourShare: ledger.ShareOf(ToDataModel(found), member.ID),
	})
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateExpense(chi.URLParam(r, "id"), member.HouseholdID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	if err := h.Service.DeleteExpense(chi.URLParam(r, "id"), member.HouseholdID); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

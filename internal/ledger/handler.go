package ledger

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/currency"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	NetBalance(householdID, viewpointID string) (float64, error)
	Report(householdID string, month time.Time) (*MonthlyReport, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	format  currency.Formatter
}

func NewHandler(service ServiceAPI, format currency.Formatter) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		format:      format,
	}
}

type balanceResponse struct {
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
	Status    string  `json:"status"`
	Message   string  `json:"message"`
}

// GetBalance reports the net balance from the acting member's side.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	balance, err := h.Service.NetBalance(member.HouseholdID, member.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	formatted := h.format(math.Abs(balance))
	resp := balanceResponse{Balance: balance, Formatted: formatted}
	switch {
	case balance > 0:
		resp.Status = "owed"
		resp.Message = "Tu pareja te debe " + formatted
	case balance < 0:
		resp.Status = "owing"
		resp.Message = "Le debes " + formatted + " a tu pareja"
	default:
		resp.Status = "settled"
		resp.Message = "Están a mano"
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// GetReport aggregates one calendar month, defaulting to the current one.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	month, err := transport.ParseMonthParam(r, "month")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	report, err := h.Service.Report(member.HouseholdID, month)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, report)
}

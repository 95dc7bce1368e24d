package insights

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	ForMonth(member *internal.ActingMember, month, reference time.Time) ([]Insight, error)
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

type insightsResponse struct {
	Month    string    `json:"month"`
	Insights []Insight `json:"insights"`
}

// GetInsights returns the ordered insight sequence for one month. The
// optional reference query param pins "today" for reproducible responses.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
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

	var reference time.Time
	if raw := r.URL.Query().Get("reference"); raw != "" {
		reference, err = time.Parse("2006-01-02", raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "reference must be YYYY-MM-DD")
			return
		}
	}

	insights, err := h.Service.ForMonth(member, month, reference)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, insightsResponse{
		Month:    month.Format("2006-01"),
		Insights: insights,
	})
}

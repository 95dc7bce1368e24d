package household

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/casafin/household-ledger/internal"
	"github.com/casafin/household-ledger/internal/transport"
	"github.com/casafin/household-ledger/pkg/logger"
)

type ServiceAPI interface {
	CreateHousehold(dto CreateHouseholdDTO) (*Household, *Member, error)
	JoinHousehold(dto JoinHouseholdDTO) (*Household, *Member, error)
	GetHousehold(id string) (*Household, []*Member, error)
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

// householdResponse bundles a household with the member the operation
// concerns, so a creator immediately sees their invite code.
type householdResponse struct {
	Household *Household `json:"household"`
	Member    *Member    `json:"member,omitempty"`
	Members   []*Member  `json:"members,omitempty"`
}

func (h *Handler) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var dto CreateHouseholdDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateHousehold: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, founder, err := h.Service.CreateHousehold(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, householdResponse{Household: created, Member: founder})
}

func (h *Handler) JoinHousehold(w http.ResponseWriter, r *http.Request) {
	var dto JoinHouseholdDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("JoinHousehold: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	joined, member, err := h.Service.JoinHousehold(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, householdResponse{Household: joined, Member: member})
}

// GetMyHousehold returns the acting member's household with both members.
func (h *Handler) GetMyHousehold(w http.ResponseWriter, r *http.Request) {
	member, ok := internal.MemberFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "member not resolved")
		return
	}

	found, members, err := h.Service.GetHousehold(member.HouseholdID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, householdResponse{Household: found, Members: members})
}

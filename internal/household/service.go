package household

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casafin/household-ledger/internal"
	householdDatamodel "github.com/casafin/household-ledger/internal/core/datamodel/household"
)

const inviteCodeLength = 6

// Repository defines the data access methods for households and members.
type Repository interface {
	CreateHousehold(h *householdDatamodel.Household) error
	GetHousehold(id string) (*householdDatamodel.Household, error)
	CreateMember(m *householdDatamodel.Member) error
	GetMemberByID(id string) (*householdDatamodel.Member, error)
	GetMemberByInviteCode(code string) (*householdDatamodel.Member, error)
	UpdateMember(m *householdDatamodel.Member) error
	GetMembers(householdID string) ([]*householdDatamodel.Member, error)
}

// CategorySeeder creates the starter categories for a fresh household.
type CategorySeeder interface {
	SeedDefaults(householdID string) error
}

// Service handles household lifecycle: creation, partner linking via invite
// codes, and member resolution for request scoping.
type Service struct {
	repo   Repository
	seeder CategorySeeder
	logger *slog.Logger
}

func NewService(repo Repository, seeder CategorySeeder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		seeder: seeder,
		logger: logger,
	}
}

// CreateHousehold opens a household with its founding member and seeds the
// default categories. The returned member carries the invite code.
func (s *Service) CreateHousehold(dto CreateHouseholdDTO) (*Household, *Member, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("household validation failed", "error", err)
		return nil, nil, err
	}

	h := &householdDatamodel.Household{
		ID:        uuid.New().String(),
		Name:      dto.HouseholdName,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateHousehold(h); err != nil {
		s.logger.Error("failed to create household", "error", err)
		return nil, nil, err
	}

	code := newInviteCode()
	founder := &householdDatamodel.Member{
		ID:          uuid.New().String(),
		Name:        dto.MemberName,
		Email:       dto.Email,
		HouseholdID: &h.ID,
		InviteCode:  &code,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateMember(founder); err != nil {
		s.logger.Error("failed to create founding member", "error", err, "household_id", h.ID)
		return nil, nil, err
	}

	if s.seeder != nil {
		if err := s.seeder.SeedDefaults(h.ID); err != nil {
			return nil, nil, err
		}
	}

	s.logger.Info("household created",
		"household_id", h.ID,
		"member_id", founder.ID)

	return householdFromDataModel(h), memberFromDataModel(founder), nil
}

// JoinHousehold links a second member into the household behind the invite
// code. The code is retired once both partners are linked.
func (s *Service) JoinHousehold(dto JoinHouseholdDTO) (*Household, *Member, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, err
	}

	inviter, err := s.repo.GetMemberByInviteCode(normalizeInviteCode(dto.InviteCode))
	if err != nil {
		return nil, nil, internal.ErrInviteCodeInvalid
	}
	if inviter.PartnerID != nil {
		return nil, nil, internal.ErrAlreadyLinked
	}
	if inviter.HouseholdID == nil {
		return nil, nil, internal.ErrHouseholdNotFound
	}

	h, err := s.repo.GetHousehold(*inviter.HouseholdID)
	if err != nil {
		return nil, nil, internal.ErrHouseholdNotFound
	}

	joiner := &householdDatamodel.Member{
		ID:          uuid.New().String(),
		Name:        dto.MemberName,
		Email:       dto.Email,
		PartnerID:   &inviter.ID,
		HouseholdID: inviter.HouseholdID,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateMember(joiner); err != nil {
		s.logger.Error("failed to create joining member", "error", err, "household_id", h.ID)
		return nil, nil, err
	}

	inviter.PartnerID = &joiner.ID
	inviter.InviteCode = nil
	if err := s.repo.UpdateMember(inviter); err != nil {
		s.logger.Error("failed to link inviter", "error", err, "member_id", inviter.ID)
		return nil, nil, err
	}

	s.logger.Info("household joined",
		"household_id", h.ID,
		"member_id", joiner.ID,
		"partner_id", inviter.ID)

	return householdFromDataModel(h), memberFromDataModel(joiner), nil
}

// GetHousehold returns a household with its members.
func (s *Service) GetHousehold(id string) (*Household, []*Member, error) {
	h, err := s.repo.GetHousehold(id)
	if err != nil {
		return nil, nil, internal.ErrHouseholdNotFound
	}
	members, err := s.repo.GetMembers(id)
	if err != nil {
		return nil, nil, err
	}
	return householdFromDataModel(h), membersFromDataModel(members), nil
}

// ResolveMember maps a member id to the acting-member identity the request
// middleware attaches to the context.
func (s *Service) ResolveMember(memberID string) (*internal.ActingMember, error) {
	m, err := s.repo.GetMemberByID(memberID)
	if err != nil {
		return nil, internal.ErrMemberNotFound
	}
	if m.HouseholdID == nil {
		return nil, internal.ErrHouseholdNotFound
	}

	acting := &internal.ActingMember{
		ID:          m.ID,
		Name:        m.Name,
		HouseholdID: *m.HouseholdID,
	}
	if m.PartnerID != nil {
		acting.PartnerID = *m.PartnerID
	}
	return acting, nil
}

func newInviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:inviteCodeLength])
}

func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

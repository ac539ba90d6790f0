package domain

import (
	"context"
	"strings"
	"time"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole normalises a stored role. Unknown roles fall back to candidate.
func ParseRole(raw string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleRecruiter, RoleAdmin:
		return r
	default:
		return RoleCandidate
	}
}

// IsStaff reports whether the role may use the admin screens.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleRecruiter
}

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusDisabled AccountStatus = "disabled"
)

// ParseAccountStatus treats anything but an explicit "disabled" as active.
func ParseAccountStatus(raw string) AccountStatus {
	if AccountStatus(strings.ToLower(strings.TrimSpace(raw))) == AccountStatusDisabled {
		return AccountStatusDisabled
	}
	return AccountStatusActive
}

// Toggled returns the opposite status.
func (s AccountStatus) Toggled() AccountStatus {
	if s == AccountStatusActive {
		return AccountStatusDisabled
	}
	return AccountStatusActive
}

// Action is the roster button label that moves an account away from s.
func (s AccountStatus) Action() string {
	if s == AccountStatusActive {
		return "Disable"
	}
	return "Enable"
}

// Principal is a user account document.
type Principal struct {
	UID             string        `json:"uid"`
	Role            Role          `json:"role"`
	FullName        string        `json:"fullname"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	Experience      int           `json:"experience"`
	ProfilePhotoURL string        `json:"profilePhotoURL,omitempty"`
	AccountStatus   AccountStatus `json:"accountStatus"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Identity is the authenticated caller, resolved once per request and passed
// explicitly to usecases.
type Identity struct {
	UID  string
	Role Role
}

type PrincipalRepository interface {
	// GetByUID returns ErrNotFound when the account does not exist.
	GetByUID(ctx context.Context, uid string) (*Principal, error)
	// ListByRole returns accounts with the role, newest creation first.
	ListByRole(ctx context.Context, role Role) ([]Principal, error)
	// UpdateAccountStatus sets accountStatus and stamps updatedAt with the
	// store's clock, which is returned.
	UpdateAccountStatus(ctx context.Context, uid string, status AccountStatus) (time.Time, error)
}

// RosterEntry is one candidate card on the admin roster.
type RosterEntry struct {
	Principal
	Action string `json:"action"`
}

// CandidateRoster is the admin roster screen.
type CandidateRoster struct {
	Search     string        `json:"search"`
	Total      int           `json:"total"`
	Candidates []RosterEntry `json:"candidates"`
}

// RosterQuery carries the roster search term.
type RosterQuery struct {
	Search string `form:"search" binding:"omitempty,search_term"`
}

// RosterExportQuery adds the file format to the roster search.
type RosterExportQuery struct {
	RosterQuery
	Format string `form:"format" binding:"omitempty,oneof=xlsx csv"`
}

// ToggleStatusRequest must carry an explicit confirmation.
type ToggleStatusRequest struct {
	Confirm bool `json:"confirm"`
}

type RosterUsecase interface {
	ListCandidates(ctx context.Context, who Identity, search string) (*CandidateRoster, error)
	ToggleStatus(ctx context.Context, who Identity, uid string, confirmed bool) (*Principal, error)
	ExportCandidates(ctx context.Context, who Identity, search, format string) ([]byte, string, error)
}

type AuthUsecase interface {
	// ResolvePrincipal loads the caller's account and refuses disabled ones.
	ResolvePrincipal(ctx context.Context, uid string) (*Principal, error)
	// GetProfile returns the caller's account with a loadable photo URL.
	GetProfile(ctx context.Context, who Identity) (*Principal, error)
}

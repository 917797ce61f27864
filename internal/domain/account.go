package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanFree   Plan = "free"
	PlanPro    Plan = "pro"
	PlanAgency Plan = "agency"
)

func (p Plan) String() string { return string(p) }

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanAgency:
		return true
	}
	return false
}

// PlanLimits maps every plan to the number of profiles it allows.
type PlanLimits map[Plan]int

// DefaultPlanLimits returns the stock profile allowance per plan.
func DefaultPlanLimits() PlanLimits {
	return PlanLimits{
		PlanFree:   1,
		PlanPro:    10,
		PlanAgency: 999,
	}
}

// LimitFor returns the profile limit for p. Unknown plans get the free limit.
func (l PlanLimits) LimitFor(p Plan) int {
	if n, ok := l[p]; ok {
		return n
	}
	return l[PlanFree]
}

// Account is the per-user tenant record. Its ID equals the identity subject.
type Account struct {
	ID               uuid.UUID
	Email            string
	FullName         string
	CompanyName      string
	AvatarURL        *string
	SubscriptionPlan Plan
	ProfileCount     int
	ProfileLimit     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CanCreateProfile reports whether the account has room for another profile.
func (a *Account) CanCreateProfile() bool {
	return a.ProfileCount < a.ProfileLimit
}

// AccountWithRole is an account row joined with its role assignment.
type AccountWithRole struct {
	Account
	Role Role
}

// AccountOverview is the caller's own account with what it may do next.
type AccountOverview struct {
	AccountWithRole
	CanCreateProfile bool
}

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalAccounts   int
	TotalProfiles   int
	TotalAIRequests int
}

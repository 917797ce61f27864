package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateSettingsFunc func(ctx context.Context, id uuid.UUID, fullName *string, companyName *string) (*domain.Account, error)
	UpdatePlanFunc     func(ctx context.Context, id uuid.UUID, plan domain.Plan, limit int) (*domain.Account, error)
	ListFunc           func(ctx context.Context, limit int, offset int) ([]domain.AccountWithRole, error)
	CountFunc          func(ctx context.Context) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateSettings []struct {
			Ctx         context.Context
			ID          uuid.UUID
			FullName    *string
			CompanyName *string
		}
		UpdatePlan []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Plan  domain.Plan
			Limit int
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockGetByID        sync.RWMutex
	lockUpdateSettings sync.RWMutex
	lockUpdatePlan     sync.RWMutex
	lockList           sync.RWMutex
	lockCount          sync.RWMutex
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateSettings(ctx context.Context, id uuid.UUID, fullName *string, companyName *string) (*domain.Account, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("accountRepoMock.UpdateSettingsFunc: method is nil but accountRepo.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		FullName    *string
		CompanyName *string
	}{Ctx: ctx, ID: id, FullName: fullName, CompanyName: companyName}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, id, fullName, companyName)
}

func (mock *accountRepoMock) UpdateSettingsCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	FullName    *string
	CompanyName *string
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdatePlan(ctx context.Context, id uuid.UUID, plan domain.Plan, limit int) (*domain.Account, error) {
	if mock.UpdatePlanFunc == nil {
		panic("accountRepoMock.UpdatePlanFunc: method is nil but accountRepo.UpdatePlan was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Plan  domain.Plan
		Limit int
	}{Ctx: ctx, ID: id, Plan: plan, Limit: limit}
	mock.lockUpdatePlan.Lock()
	mock.calls.UpdatePlan = append(mock.calls.UpdatePlan, callInfo)
	mock.lockUpdatePlan.Unlock()
	return mock.UpdatePlanFunc(ctx, id, plan, limit)
}

func (mock *accountRepoMock) UpdatePlanCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Plan  domain.Plan
	Limit int
} {
	mock.lockUpdatePlan.RLock()
	calls := mock.calls.UpdatePlan
	mock.lockUpdatePlan.RUnlock()
	return calls
}

func (mock *accountRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.AccountWithRole, error) {
	if mock.ListFunc == nil {
		panic("accountRepoMock.ListFunc: method is nil but accountRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *accountRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("accountRepoMock.CountFunc: method is nil but accountRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *accountRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ roleRepo = &roleRepoMock{}

type roleRepoMock struct {
	AssignFunc func(ctx context.Context, userID uuid.UUID, role domain.Role) error

	calls struct {
		Assign []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Role   domain.Role
		}
	}
	lockAssign sync.RWMutex
}

func (mock *roleRepoMock) Assign(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	if mock.AssignFunc == nil {
		panic("roleRepoMock.AssignFunc: method is nil but roleRepo.Assign was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Role   domain.Role
	}{Ctx: ctx, UserID: userID, Role: role}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, userID, role)
}

func (mock *roleRepoMock) AssignCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Role   domain.Role
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

var _ profileCounter = &profileCounterMock{}

type profileCounterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *profileCounterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("profileCounterMock.CountFunc: method is nil but profileCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *profileCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ usageCounter = &usageCounterMock{}

type usageCounterMock struct {
	CountFunc func(ctx context.Context) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *usageCounterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("usageCounterMock.CountFunc: method is nil but usageCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *usageCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ billingRepo = &billingRepoMock{}

type billingRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BillingRecord, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *billingRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BillingRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("billingRepoMock.ListByUserFunc: method is nil but billingRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *billingRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ profileGate = &profileGateMock{}

type profileGateMock struct {
	CanCreateProfileFunc func(ctx context.Context, c domain.Caller) (bool, error)

	calls struct {
		CanCreateProfile []struct {
			Ctx context.Context
			C   domain.Caller
		}
	}
	lockCanCreateProfile sync.RWMutex
}

func (mock *profileGateMock) CanCreateProfile(ctx context.Context, c domain.Caller) (bool, error) {
	if mock.CanCreateProfileFunc == nil {
		panic("profileGateMock.CanCreateProfileFunc: method is nil but profileGate.CanCreateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Caller
	}{Ctx: ctx, C: c}
	mock.lockCanCreateProfile.Lock()
	mock.calls.CanCreateProfile = append(mock.calls.CanCreateProfile, callInfo)
	mock.lockCanCreateProfile.Unlock()
	return mock.CanCreateProfileFunc(ctx, c)
}

func (mock *profileGateMock) CanCreateProfileCalls() []struct {
	Ctx context.Context
	C   domain.Caller
} {
	mock.lockCanCreateProfile.RLock()
	calls := mock.calls.CanCreateProfile
	mock.lockCanCreateProfile.RUnlock()
	return calls
}

var _ checkoutGateway = &checkoutGatewayMock{}

type checkoutGatewayMock struct {
	ConfiguredFunc    func() bool
	CreateSessionFunc func(ctx context.Context, plan domain.Plan, userID uuid.UUID, email string) (string, error)

	calls struct {
		Configured    []struct{}
		CreateSession []struct {
			Ctx    context.Context
			Plan   domain.Plan
			UserID uuid.UUID
			Email  string
		}
	}
	lockConfigured    sync.RWMutex
	lockCreateSession sync.RWMutex
}

func (mock *checkoutGatewayMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("checkoutGatewayMock.ConfiguredFunc: method is nil but checkoutGateway.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *checkoutGatewayMock) ConfiguredCalls() []struct{} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *checkoutGatewayMock) CreateSession(ctx context.Context, plan domain.Plan, userID uuid.UUID, email string) (string, error) {
	if mock.CreateSessionFunc == nil {
		panic("checkoutGatewayMock.CreateSessionFunc: method is nil but checkoutGateway.CreateSession was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Plan   domain.Plan
		UserID uuid.UUID
		Email  string
	}{Ctx: ctx, Plan: plan, UserID: userID, Email: email}
	mock.lockCreateSession.Lock()
	mock.calls.CreateSession = append(mock.calls.CreateSession, callInfo)
	mock.lockCreateSession.Unlock()
	return mock.CreateSessionFunc(ctx, plan, userID, email)
}

func (mock *checkoutGatewayMock) CreateSessionCalls() []struct {
	Ctx    context.Context
	Plan   domain.Plan
	UserID uuid.UUID
	Email  string
} {
	mock.lockCreateSession.RLock()
	calls := mock.calls.CreateSession
	mock.lockCreateSession.RUnlock()
	return calls
}

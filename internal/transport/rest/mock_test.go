package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/account"
	"github.com/heartmarshall/biokit-backend/internal/service/auth"
	"github.com/heartmarshall/biokit-backend/internal/service/generation"
	"github.com/heartmarshall/biokit-backend/internal/service/profile"
	"github.com/heartmarshall/biokit-backend/internal/service/publication"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc   func(ctx context.Context, input auth.LoginInput) (*domain.Session, error)
	RefreshFunc func(ctx context.Context, input auth.RefreshInput) (*domain.Session, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
	}
	lockLogin   sync.RWMutex
	lockRefresh sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*domain.Session, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*domain.Session, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	MeFunc             func(ctx context.Context, caller domain.Caller) (*domain.AccountOverview, error)
	UpdateSettingsFunc func(ctx context.Context, caller domain.Caller, in account.UpdateSettingsInput) (*domain.Account, error)
	BillingHistoryFunc func(ctx context.Context, caller domain.Caller) ([]domain.BillingRecord, error)
	CheckoutFunc       func(ctx context.Context, caller domain.Caller, plan domain.Plan) (*domain.CheckoutSession, error)

	calls struct {
		Me []struct {
			Ctx    context.Context
			Caller domain.Caller
		}
		UpdateSettings []struct {
			Ctx    context.Context
			Caller domain.Caller
			In     account.UpdateSettingsInput
		}
		BillingHistory []struct {
			Ctx    context.Context
			Caller domain.Caller
		}
		Checkout []struct {
			Ctx    context.Context
			Caller domain.Caller
			Plan   domain.Plan
		}
	}
	lockMe             sync.RWMutex
	lockUpdateSettings sync.RWMutex
	lockBillingHistory sync.RWMutex
	lockCheckout       sync.RWMutex
}

func (mock *accountServiceMock) Me(ctx context.Context, caller domain.Caller) (*domain.AccountOverview, error) {
	if mock.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
	}{Ctx: ctx, Caller: caller}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx, caller)
}

func (mock *accountServiceMock) MeCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateSettings(ctx context.Context, caller domain.Caller, in account.UpdateSettingsInput) (*domain.Account, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("accountServiceMock.UpdateSettingsFunc: method is nil but accountService.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		In     account.UpdateSettingsInput
	}{Ctx: ctx, Caller: caller, In: in}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, caller, in)
}

func (mock *accountServiceMock) UpdateSettingsCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	In     account.UpdateSettingsInput
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}

func (mock *accountServiceMock) BillingHistory(ctx context.Context, caller domain.Caller) ([]domain.BillingRecord, error) {
	if mock.BillingHistoryFunc == nil {
		panic("accountServiceMock.BillingHistoryFunc: method is nil but accountService.BillingHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
	}{Ctx: ctx, Caller: caller}
	mock.lockBillingHistory.Lock()
	mock.calls.BillingHistory = append(mock.calls.BillingHistory, callInfo)
	mock.lockBillingHistory.Unlock()
	return mock.BillingHistoryFunc(ctx, caller)
}

func (mock *accountServiceMock) BillingHistoryCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
} {
	mock.lockBillingHistory.RLock()
	calls := mock.calls.BillingHistory
	mock.lockBillingHistory.RUnlock()
	return calls
}

func (mock *accountServiceMock) Checkout(ctx context.Context, caller domain.Caller, plan domain.Plan) (*domain.CheckoutSession, error) {
	if mock.CheckoutFunc == nil {
		panic("accountServiceMock.CheckoutFunc: method is nil but accountService.Checkout was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		Plan   domain.Plan
	}{Ctx: ctx, Caller: caller, Plan: plan}
	mock.lockCheckout.Lock()
	mock.calls.Checkout = append(mock.calls.Checkout, callInfo)
	mock.lockCheckout.Unlock()
	return mock.CheckoutFunc(ctx, caller, plan)
}

func (mock *accountServiceMock) CheckoutCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	Plan   domain.Plan
} {
	mock.lockCheckout.RLock()
	calls := mock.calls.Checkout
	mock.lockCheckout.RUnlock()
	return calls
}

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	ListAccountsFunc func(ctx context.Context, caller domain.Caller, limit int, offset int) ([]domain.AccountWithRole, int, error)
	StatsFunc        func(ctx context.Context, caller domain.Caller) (*domain.PlatformStats, error)
	ChangePlanFunc   func(ctx context.Context, caller domain.Caller, userID uuid.UUID, plan domain.Plan) (*domain.Account, error)
	SetRoleFunc      func(ctx context.Context, caller domain.Caller, userID uuid.UUID, role domain.Role) error

	calls struct {
		ListAccounts []struct {
			Ctx    context.Context
			Caller domain.Caller
			Limit  int
			Offset int
		}
		Stats []struct {
			Ctx    context.Context
			Caller domain.Caller
		}
		ChangePlan []struct {
			Ctx    context.Context
			Caller domain.Caller
			UserID uuid.UUID
			Plan   domain.Plan
		}
		SetRole []struct {
			Ctx    context.Context
			Caller domain.Caller
			UserID uuid.UUID
			Role   domain.Role
		}
	}
	lockListAccounts sync.RWMutex
	lockStats        sync.RWMutex
	lockChangePlan   sync.RWMutex
	lockSetRole      sync.RWMutex
}

func (mock *adminServiceMock) ListAccounts(ctx context.Context, caller domain.Caller, limit int, offset int) ([]domain.AccountWithRole, int, error) {
	if mock.ListAccountsFunc == nil {
		panic("adminServiceMock.ListAccountsFunc: method is nil but adminService.ListAccounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		Limit  int
		Offset int
	}{Ctx: ctx, Caller: caller, Limit: limit, Offset: offset}
	mock.lockListAccounts.Lock()
	mock.calls.ListAccounts = append(mock.calls.ListAccounts, callInfo)
	mock.lockListAccounts.Unlock()
	return mock.ListAccountsFunc(ctx, caller, limit, offset)
}

func (mock *adminServiceMock) ListAccountsCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	Limit  int
	Offset int
} {
	mock.lockListAccounts.RLock()
	calls := mock.calls.ListAccounts
	mock.lockListAccounts.RUnlock()
	return calls
}

func (mock *adminServiceMock) Stats(ctx context.Context, caller domain.Caller) (*domain.PlatformStats, error) {
	if mock.StatsFunc == nil {
		panic("adminServiceMock.StatsFunc: method is nil but adminService.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
	}{Ctx: ctx, Caller: caller}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, caller)
}

func (mock *adminServiceMock) StatsCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *adminServiceMock) ChangePlan(ctx context.Context, caller domain.Caller, userID uuid.UUID, plan domain.Plan) (*domain.Account, error) {
	if mock.ChangePlanFunc == nil {
		panic("adminServiceMock.ChangePlanFunc: method is nil but adminService.ChangePlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		UserID uuid.UUID
		Plan   domain.Plan
	}{Ctx: ctx, Caller: caller, UserID: userID, Plan: plan}
	mock.lockChangePlan.Lock()
	mock.calls.ChangePlan = append(mock.calls.ChangePlan, callInfo)
	mock.lockChangePlan.Unlock()
	return mock.ChangePlanFunc(ctx, caller, userID, plan)
}

func (mock *adminServiceMock) ChangePlanCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	UserID uuid.UUID
	Plan   domain.Plan
} {
	mock.lockChangePlan.RLock()
	calls := mock.calls.ChangePlan
	mock.lockChangePlan.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetRole(ctx context.Context, caller domain.Caller, userID uuid.UUID, role domain.Role) error {
	if mock.SetRoleFunc == nil {
		panic("adminServiceMock.SetRoleFunc: method is nil but adminService.SetRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		UserID uuid.UUID
		Role   domain.Role
	}{Ctx: ctx, Caller: caller, UserID: userID, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, caller, userID, role)
}

func (mock *adminServiceMock) SetRoleCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	UserID uuid.UUID
	Role   domain.Role
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	CreateProfileFunc       func(ctx context.Context, caller domain.Caller, in profile.CreateProfileInput) (*domain.Profile, error)
	GetProfileFunc          func(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Profile, error)
	ListProfilesFunc        func(ctx context.Context, caller domain.Caller, in profile.ListProfilesInput) ([]domain.Profile, error)
	UpdateProfileFunc       func(ctx context.Context, caller domain.Caller, id uuid.UUID, in profile.UpdateProfileInput) (*domain.Profile, error)
	DeleteProfileFunc       func(ctx context.Context, caller domain.Caller, id uuid.UUID) error
	SetProfilePublishedFunc func(ctx context.Context, caller domain.Caller, id uuid.UUID, published bool) (*domain.Profile, error)
	ListBiographiesFunc     func(ctx context.Context, caller domain.Caller, id uuid.UUID) ([]domain.Biography, error)
	GetAnalyticsFunc        func(ctx context.Context, caller domain.Caller, id uuid.UUID, days int) ([]domain.DailyViews, error)

	calls struct {
		CreateProfile []struct {
			Ctx    context.Context
			Caller domain.Caller
			In     profile.CreateProfileInput
		}
		GetProfile []struct {
			Ctx    context.Context
			Caller domain.Caller
			ID     uuid.UUID
		}
		ListProfiles []struct {
			Ctx    context.Context
			Caller domain.Caller
			In     profile.ListProfilesInput
		}
		UpdateProfile []struct {
			Ctx    context.Context
			Caller domain.Caller
			ID     uuid.UUID
			In     profile.UpdateProfileInput
		}
		DeleteProfile []struct {
			Ctx    context.Context
			Caller domain.Caller
			ID     uuid.UUID
		}
		SetProfilePublished []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ID        uuid.UUID
			Published bool
		}
		ListBiographies []struct {
			Ctx    context.Context
			Caller domain.Caller
			ID     uuid.UUID
		}
		GetAnalytics []struct {
			Ctx    context.Context
			Caller domain.Caller
			ID     uuid.UUID
			Days   int
		}
	}
	lockCreateProfile       sync.RWMutex
	lockGetProfile          sync.RWMutex
	lockListProfiles        sync.RWMutex
	lockUpdateProfile       sync.RWMutex
	lockDeleteProfile       sync.RWMutex
	lockSetProfilePublished sync.RWMutex
	lockListBiographies     sync.RWMutex
	lockGetAnalytics        sync.RWMutex
}

func (mock *profileServiceMock) CreateProfile(ctx context.Context, caller domain.Caller, in profile.CreateProfileInput) (*domain.Profile, error) {
	if mock.CreateProfileFunc == nil {
		panic("profileServiceMock.CreateProfileFunc: method is nil but profileService.CreateProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		In     profile.CreateProfileInput
	}{Ctx: ctx, Caller: caller, In: in}
	mock.lockCreateProfile.Lock()
	mock.calls.CreateProfile = append(mock.calls.CreateProfile, callInfo)
	mock.lockCreateProfile.Unlock()
	return mock.CreateProfileFunc(ctx, caller, in)
}

func (mock *profileServiceMock) CreateProfileCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	In     profile.CreateProfileInput
} {
	mock.lockCreateProfile.RLock()
	calls := mock.calls.CreateProfile
	mock.lockCreateProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) GetProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		ID     uuid.UUID
	}{Ctx: ctx, Caller: caller, ID: id}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, caller, id)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	ID     uuid.UUID
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) ListProfiles(ctx context.Context, caller domain.Caller, in profile.ListProfilesInput) ([]domain.Profile, error) {
	if mock.ListProfilesFunc == nil {
		panic("profileServiceMock.ListProfilesFunc: method is nil but profileService.ListProfiles was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		In     profile.ListProfilesInput
	}{Ctx: ctx, Caller: caller, In: in}
	mock.lockListProfiles.Lock()
	mock.calls.ListProfiles = append(mock.calls.ListProfiles, callInfo)
	mock.lockListProfiles.Unlock()
	return mock.ListProfilesFunc(ctx, caller, in)
}

func (mock *profileServiceMock) ListProfilesCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	In     profile.ListProfilesInput
} {
	mock.lockListProfiles.RLock()
	calls := mock.calls.ListProfiles
	mock.lockListProfiles.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, caller domain.Caller, id uuid.UUID, in profile.UpdateProfileInput) (*domain.Profile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		ID     uuid.UUID
		In     profile.UpdateProfileInput
	}{Ctx: ctx, Caller: caller, ID: id, In: in}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, caller, id, in)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	ID     uuid.UUID
	In     profile.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) DeleteProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if mock.DeleteProfileFunc == nil {
		panic("profileServiceMock.DeleteProfileFunc: method is nil but profileService.DeleteProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		ID     uuid.UUID
	}{Ctx: ctx, Caller: caller, ID: id}
	mock.lockDeleteProfile.Lock()
	mock.calls.DeleteProfile = append(mock.calls.DeleteProfile, callInfo)
	mock.lockDeleteProfile.Unlock()
	return mock.DeleteProfileFunc(ctx, caller, id)
}

func (mock *profileServiceMock) DeleteProfileCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	ID     uuid.UUID
} {
	mock.lockDeleteProfile.RLock()
	calls := mock.calls.DeleteProfile
	mock.lockDeleteProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) SetProfilePublished(ctx context.Context, caller domain.Caller, id uuid.UUID, published bool) (*domain.Profile, error) {
	if mock.SetProfilePublishedFunc == nil {
		panic("profileServiceMock.SetProfilePublishedFunc: method is nil but profileService.SetProfilePublished was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ID        uuid.UUID
		Published bool
	}{Ctx: ctx, Caller: caller, ID: id, Published: published}
	mock.lockSetProfilePublished.Lock()
	mock.calls.SetProfilePublished = append(mock.calls.SetProfilePublished, callInfo)
	mock.lockSetProfilePublished.Unlock()
	return mock.SetProfilePublishedFunc(ctx, caller, id, published)
}

func (mock *profileServiceMock) SetProfilePublishedCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ID        uuid.UUID
	Published bool
} {
	mock.lockSetProfilePublished.RLock()
	calls := mock.calls.SetProfilePublished
	mock.lockSetProfilePublished.RUnlock()
	return calls
}

func (mock *profileServiceMock) ListBiographies(ctx context.Context, caller domain.Caller, id uuid.UUID) ([]domain.Biography, error) {
	if mock.ListBiographiesFunc == nil {
		panic("profileServiceMock.ListBiographiesFunc: method is nil but profileService.ListBiographies was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		ID     uuid.UUID
	}{Ctx: ctx, Caller: caller, ID: id}
	mock.lockListBiographies.Lock()
	mock.calls.ListBiographies = append(mock.calls.ListBiographies, callInfo)
	mock.lockListBiographies.Unlock()
	return mock.ListBiographiesFunc(ctx, caller, id)
}

func (mock *profileServiceMock) ListBiographiesCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	ID     uuid.UUID
} {
	mock.lockListBiographies.RLock()
	calls := mock.calls.ListBiographies
	mock.lockListBiographies.RUnlock()
	return calls
}

func (mock *profileServiceMock) GetAnalytics(ctx context.Context, caller domain.Caller, id uuid.UUID, days int) ([]domain.DailyViews, error) {
	if mock.GetAnalyticsFunc == nil {
		panic("profileServiceMock.GetAnalyticsFunc: method is nil but profileService.GetAnalytics was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		ID     uuid.UUID
		Days   int
	}{Ctx: ctx, Caller: caller, ID: id, Days: days}
	mock.lockGetAnalytics.Lock()
	mock.calls.GetAnalytics = append(mock.calls.GetAnalytics, callInfo)
	mock.lockGetAnalytics.Unlock()
	return mock.GetAnalyticsFunc(ctx, caller, id, days)
}

func (mock *profileServiceMock) GetAnalyticsCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	ID     uuid.UUID
	Days   int
} {
	mock.lockGetAnalytics.RLock()
	calls := mock.calls.GetAnalytics
	mock.lockGetAnalytics.RUnlock()
	return calls
}

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateBiographiesFunc func(ctx context.Context, caller domain.Caller, in generation.GenerateInput) (generation.GenerateResult, error)

	calls struct {
		GenerateBiographies []struct {
			Ctx    context.Context
			Caller domain.Caller
			In     generation.GenerateInput
		}
	}
	lockGenerateBiographies sync.RWMutex
}

func (mock *generationServiceMock) GenerateBiographies(ctx context.Context, caller domain.Caller, in generation.GenerateInput) (generation.GenerateResult, error) {
	if mock.GenerateBiographiesFunc == nil {
		panic("generationServiceMock.GenerateBiographiesFunc: method is nil but generationService.GenerateBiographies was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Caller domain.Caller
		In     generation.GenerateInput
	}{Ctx: ctx, Caller: caller, In: in}
	mock.lockGenerateBiographies.Lock()
	mock.calls.GenerateBiographies = append(mock.calls.GenerateBiographies, callInfo)
	mock.lockGenerateBiographies.Unlock()
	return mock.GenerateBiographiesFunc(ctx, caller, in)
}

func (mock *generationServiceMock) GenerateBiographiesCalls() []struct {
	Ctx    context.Context
	Caller domain.Caller
	In     generation.GenerateInput
} {
	mock.lockGenerateBiographies.RLock()
	calls := mock.calls.GenerateBiographies
	mock.lockGenerateBiographies.RUnlock()
	return calls
}

var _ schemaService = &schemaServiceMock{}

type schemaServiceMock struct {
	GenerateSchemaFunc func(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error)
	GetSchemaFunc      func(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error)

	calls struct {
		GenerateSchema []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ProfileID uuid.UUID
		}
		GetSchema []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ProfileID uuid.UUID
		}
	}
	lockGenerateSchema sync.RWMutex
	lockGetSchema      sync.RWMutex
}

func (mock *schemaServiceMock) GenerateSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	if mock.GenerateSchemaFunc == nil {
		panic("schemaServiceMock.GenerateSchemaFunc: method is nil but schemaService.GenerateSchema was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ProfileID uuid.UUID
	}{Ctx: ctx, Caller: caller, ProfileID: profileID}
	mock.lockGenerateSchema.Lock()
	mock.calls.GenerateSchema = append(mock.calls.GenerateSchema, callInfo)
	mock.lockGenerateSchema.Unlock()
	return mock.GenerateSchemaFunc(ctx, caller, profileID)
}

func (mock *schemaServiceMock) GenerateSchemaCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ProfileID uuid.UUID
} {
	mock.lockGenerateSchema.RLock()
	calls := mock.calls.GenerateSchema
	mock.lockGenerateSchema.RUnlock()
	return calls
}

func (mock *schemaServiceMock) GetSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	if mock.GetSchemaFunc == nil {
		panic("schemaServiceMock.GetSchemaFunc: method is nil but schemaService.GetSchema was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ProfileID uuid.UUID
	}{Ctx: ctx, Caller: caller, ProfileID: profileID}
	mock.lockGetSchema.Lock()
	mock.calls.GetSchema = append(mock.calls.GetSchema, callInfo)
	mock.lockGetSchema.Unlock()
	return mock.GetSchemaFunc(ctx, caller, profileID)
}

func (mock *schemaServiceMock) GetSchemaCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ProfileID uuid.UUID
} {
	mock.lockGetSchema.RLock()
	calls := mock.calls.GetSchema
	mock.lockGetSchema.RUnlock()
	return calls
}

var _ pressKitService = &pressKitServiceMock{}

type pressKitServiceMock struct {
	PublishPressKitFunc   func(ctx context.Context, caller domain.Caller, profileID uuid.UUID, settings domain.PressKitSettings) (*domain.PressKit, error)
	UnpublishPressKitFunc func(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error)
	GetPressKitFunc       func(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error)

	calls struct {
		PublishPressKit []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ProfileID uuid.UUID
			Settings  domain.PressKitSettings
		}
		UnpublishPressKit []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ProfileID uuid.UUID
		}
		GetPressKit []struct {
			Ctx       context.Context
			Caller    domain.Caller
			ProfileID uuid.UUID
		}
	}
	lockPublishPressKit   sync.RWMutex
	lockUnpublishPressKit sync.RWMutex
	lockGetPressKit       sync.RWMutex
}

func (mock *pressKitServiceMock) PublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID, settings domain.PressKitSettings) (*domain.PressKit, error) {
	if mock.PublishPressKitFunc == nil {
		panic("pressKitServiceMock.PublishPressKitFunc: method is nil but pressKitService.PublishPressKit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ProfileID uuid.UUID
		Settings  domain.PressKitSettings
	}{Ctx: ctx, Caller: caller, ProfileID: profileID, Settings: settings}
	mock.lockPublishPressKit.Lock()
	mock.calls.PublishPressKit = append(mock.calls.PublishPressKit, callInfo)
	mock.lockPublishPressKit.Unlock()
	return mock.PublishPressKitFunc(ctx, caller, profileID, settings)
}

func (mock *pressKitServiceMock) PublishPressKitCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ProfileID uuid.UUID
	Settings  domain.PressKitSettings
} {
	mock.lockPublishPressKit.RLock()
	calls := mock.calls.PublishPressKit
	mock.lockPublishPressKit.RUnlock()
	return calls
}

func (mock *pressKitServiceMock) UnpublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error) {
	if mock.UnpublishPressKitFunc == nil {
		panic("pressKitServiceMock.UnpublishPressKitFunc: method is nil but pressKitService.UnpublishPressKit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ProfileID uuid.UUID
	}{Ctx: ctx, Caller: caller, ProfileID: profileID}
	mock.lockUnpublishPressKit.Lock()
	mock.calls.UnpublishPressKit = append(mock.calls.UnpublishPressKit, callInfo)
	mock.lockUnpublishPressKit.Unlock()
	return mock.UnpublishPressKitFunc(ctx, caller, profileID)
}

func (mock *pressKitServiceMock) UnpublishPressKitCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ProfileID uuid.UUID
} {
	mock.lockUnpublishPressKit.RLock()
	calls := mock.calls.UnpublishPressKit
	mock.lockUnpublishPressKit.RUnlock()
	return calls
}

func (mock *pressKitServiceMock) GetPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error) {
	if mock.GetPressKitFunc == nil {
		panic("pressKitServiceMock.GetPressKitFunc: method is nil but pressKitService.GetPressKit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Caller    domain.Caller
		ProfileID uuid.UUID
	}{Ctx: ctx, Caller: caller, ProfileID: profileID}
	mock.lockGetPressKit.Lock()
	mock.calls.GetPressKit = append(mock.calls.GetPressKit, callInfo)
	mock.lockGetPressKit.Unlock()
	return mock.GetPressKitFunc(ctx, caller, profileID)
}

func (mock *pressKitServiceMock) GetPressKitCalls() []struct {
	Ctx       context.Context
	Caller    domain.Caller
	ProfileID uuid.UUID
} {
	mock.lockGetPressKit.RLock()
	calls := mock.calls.GetPressKit
	mock.lockGetPressKit.RUnlock()
	return calls
}

var _ publicService = &publicServiceMock{}

type publicServiceMock struct {
	GetPublicProfileFunc  func(ctx context.Context, slug string, visitor string) (*publication.PublicProfile, error)
	GetPublicPressKitFunc func(ctx context.Context, slug string) (*publication.PublicPressKit, error)
	DownloadPressKitFunc  func(ctx context.Context, slug string) (*publication.PressKitDocument, error)

	calls struct {
		GetPublicProfile []struct {
			Ctx     context.Context
			Slug    string
			Visitor string
		}
		GetPublicPressKit []struct {
			Ctx  context.Context
			Slug string
		}
		DownloadPressKit []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetPublicProfile  sync.RWMutex
	lockGetPublicPressKit sync.RWMutex
	lockDownloadPressKit  sync.RWMutex
}

func (mock *publicServiceMock) GetPublicProfile(ctx context.Context, slug string, visitor string) (*publication.PublicProfile, error) {
	if mock.GetPublicProfileFunc == nil {
		panic("publicServiceMock.GetPublicProfileFunc: method is nil but publicService.GetPublicProfile was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Slug    string
		Visitor string
	}{Ctx: ctx, Slug: slug, Visitor: visitor}
	mock.lockGetPublicProfile.Lock()
	mock.calls.GetPublicProfile = append(mock.calls.GetPublicProfile, callInfo)
	mock.lockGetPublicProfile.Unlock()
	return mock.GetPublicProfileFunc(ctx, slug, visitor)
}

func (mock *publicServiceMock) GetPublicProfileCalls() []struct {
	Ctx     context.Context
	Slug    string
	Visitor string
} {
	mock.lockGetPublicProfile.RLock()
	calls := mock.calls.GetPublicProfile
	mock.lockGetPublicProfile.RUnlock()
	return calls
}

func (mock *publicServiceMock) GetPublicPressKit(ctx context.Context, slug string) (*publication.PublicPressKit, error) {
	if mock.GetPublicPressKitFunc == nil {
		panic("publicServiceMock.GetPublicPressKitFunc: method is nil but publicService.GetPublicPressKit was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetPublicPressKit.Lock()
	mock.calls.GetPublicPressKit = append(mock.calls.GetPublicPressKit, callInfo)
	mock.lockGetPublicPressKit.Unlock()
	return mock.GetPublicPressKitFunc(ctx, slug)
}

func (mock *publicServiceMock) GetPublicPressKitCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetPublicPressKit.RLock()
	calls := mock.calls.GetPublicPressKit
	mock.lockGetPublicPressKit.RUnlock()
	return calls
}

func (mock *publicServiceMock) DownloadPressKit(ctx context.Context, slug string) (*publication.PressKitDocument, error) {
	if mock.DownloadPressKitFunc == nil {
		panic("publicServiceMock.DownloadPressKitFunc: method is nil but publicService.DownloadPressKit was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockDownloadPressKit.Lock()
	mock.calls.DownloadPressKit = append(mock.calls.DownloadPressKit, callInfo)
	mock.lockDownloadPressKit.Unlock()
	return mock.DownloadPressKitFunc(ctx, slug)
}

func (mock *publicServiceMock) DownloadPressKitCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockDownloadPressKit.RLock()
	calls := mock.calls.DownloadPressKit
	mock.lockDownloadPressKit.RUnlock()
	return calls
}

var _ templateService = &templateServiceMock{}

type templateServiceMock struct {
	ListTemplatesFunc func(ctx context.Context, caller domain.Caller, templateType string) ([]domain.Template, error)

	calls struct {
		ListTemplates []struct {
			Ctx          context.Context
			Caller       domain.Caller
			TemplateType string
		}
	}
	lockListTemplates sync.RWMutex
}

func (mock *templateServiceMock) ListTemplates(ctx context.Context, caller domain.Caller, templateType string) ([]domain.Template, error) {
	if mock.ListTemplatesFunc == nil {
		panic("templateServiceMock.ListTemplatesFunc: method is nil but templateService.ListTemplates was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Caller       domain.Caller
		TemplateType string
	}{Ctx: ctx, Caller: caller, TemplateType: templateType}
	mock.lockListTemplates.Lock()
	mock.calls.ListTemplates = append(mock.calls.ListTemplates, callInfo)
	mock.lockListTemplates.Unlock()
	return mock.ListTemplatesFunc(ctx, caller, templateType)
}

func (mock *templateServiceMock) ListTemplatesCalls() []struct {
	Ctx          context.Context
	Caller       domain.Caller
	TemplateType string
} {
	mock.lockListTemplates.RLock()
	calls := mock.calls.ListTemplates
	mock.lockListTemplates.RUnlock()
	return calls
}

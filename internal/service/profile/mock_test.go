package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	ReserveProfileSlotFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseProfileSlotFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ReserveProfileSlot []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ReleaseProfileSlot []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockReserveProfileSlot sync.RWMutex
	lockReleaseProfileSlot sync.RWMutex
}

func (mock *accountRepoMock) ReserveProfileSlot(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ReserveProfileSlotFunc == nil {
		panic("accountRepoMock.ReserveProfileSlotFunc: method is nil but accountRepo.ReserveProfileSlot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReserveProfileSlot.Lock()
	mock.calls.ReserveProfileSlot = append(mock.calls.ReserveProfileSlot, callInfo)
	mock.lockReserveProfileSlot.Unlock()
	return mock.ReserveProfileSlotFunc(ctx, id)
}

func (mock *accountRepoMock) ReserveProfileSlotCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReserveProfileSlot.RLock()
	calls := mock.calls.ReserveProfileSlot
	mock.lockReserveProfileSlot.RUnlock()
	return calls
}

func (mock *accountRepoMock) ReleaseProfileSlot(ctx context.Context, id uuid.UUID) error {
	if mock.ReleaseProfileSlotFunc == nil {
		panic("accountRepoMock.ReleaseProfileSlotFunc: method is nil but accountRepo.ReleaseProfileSlot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReleaseProfileSlot.Lock()
	mock.calls.ReleaseProfileSlot = append(mock.calls.ReleaseProfileSlot, callInfo)
	mock.lockReleaseProfileSlot.Unlock()
	return mock.ReleaseProfileSlotFunc(ctx, id)
}

func (mock *accountRepoMock) ReleaseProfileSlotCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReleaseProfileSlot.RLock()
	calls := mock.calls.ReleaseProfileSlot
	mock.lockReleaseProfileSlot.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc       func(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) ([]domain.Profile, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (*domain.Profile, error)
	SetPublishedFunc func(ctx context.Context, id uuid.UUID, published bool) (*domain.Profile, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Profile
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			U   domain.ProfileUpdate
		}
		SetPublished []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Published bool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockUpdate       sync.RWMutex
	lockSetPublished sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
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

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Profile, error) {
	if mock.ListByOwnerFunc == nil {
		panic("profileRepoMock.ListByOwnerFunc: method is nil but profileRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *profileRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *profileRepoMock) Update(ctx context.Context, id uuid.UUID, u domain.ProfileUpdate) (*domain.Profile, error) {
	if mock.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but profileRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		U   domain.ProfileUpdate
	}{Ctx: ctx, ID: id, U: u}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, u)
}

func (mock *profileRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	U   domain.ProfileUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *profileRepoMock) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*domain.Profile, error) {
	if mock.SetPublishedFunc == nil {
		panic("profileRepoMock.SetPublishedFunc: method is nil but profileRepo.SetPublished was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Published bool
	}{Ctx: ctx, ID: id, Published: published}
	mock.lockSetPublished.Lock()
	mock.calls.SetPublished = append(mock.calls.SetPublished, callInfo)
	mock.lockSetPublished.Unlock()
	return mock.SetPublishedFunc(ctx, id, published)
}

func (mock *profileRepoMock) SetPublishedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Published bool
} {
	mock.lockSetPublished.RLock()
	calls := mock.calls.SetPublished
	mock.lockSetPublished.RUnlock()
	return calls
}

func (mock *profileRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("profileRepoMock.DeleteFunc: method is nil but profileRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *profileRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ biographyRepo = &biographyRepoMock{}

type biographyRepoMock struct {
	ListByProfileFunc func(ctx context.Context, profileID uuid.UUID) ([]domain.Biography, error)

	calls struct {
		ListByProfile []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
	}
	lockListByProfile sync.RWMutex
}

func (mock *biographyRepoMock) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Biography, error) {
	if mock.ListByProfileFunc == nil {
		panic("biographyRepoMock.ListByProfileFunc: method is nil but biographyRepo.ListByProfile was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockListByProfile.Lock()
	mock.calls.ListByProfile = append(mock.calls.ListByProfile, callInfo)
	mock.lockListByProfile.Unlock()
	return mock.ListByProfileFunc(ctx, profileID)
}

func (mock *biographyRepoMock) ListByProfileCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockListByProfile.RLock()
	calls := mock.calls.ListByProfile
	mock.lockListByProfile.RUnlock()
	return calls
}

var _ pressKitRepo = &pressKitRepoMock{}

type pressKitRepoMock struct {
	SyncSlugFunc func(ctx context.Context, profileID uuid.UUID, profileSlug string) error

	calls struct {
		SyncSlug []struct {
			Ctx         context.Context
			ProfileID   uuid.UUID
			ProfileSlug string
		}
	}
	lockSyncSlug sync.RWMutex
}

func (mock *pressKitRepoMock) SyncSlug(ctx context.Context, profileID uuid.UUID, profileSlug string) error {
	if mock.SyncSlugFunc == nil {
		panic("pressKitRepoMock.SyncSlugFunc: method is nil but pressKitRepo.SyncSlug was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ProfileID   uuid.UUID
		ProfileSlug string
	}{Ctx: ctx, ProfileID: profileID, ProfileSlug: profileSlug}
	mock.lockSyncSlug.Lock()
	mock.calls.SyncSlug = append(mock.calls.SyncSlug, callInfo)
	mock.lockSyncSlug.Unlock()
	return mock.SyncSlugFunc(ctx, profileID, profileSlug)
}

func (mock *pressKitRepoMock) SyncSlugCalls() []struct {
	Ctx         context.Context
	ProfileID   uuid.UUID
	ProfileSlug string
} {
	mock.lockSyncSlug.RLock()
	calls := mock.calls.SyncSlug
	mock.lockSyncSlug.RUnlock()
	return calls
}

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	ListByProfileFunc func(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.DailyViews, error)

	calls struct {
		ListByProfile []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
			Since     time.Time
		}
	}
	lockListByProfile sync.RWMutex
}

func (mock *analyticsRepoMock) ListByProfile(ctx context.Context, profileID uuid.UUID, since time.Time) ([]domain.DailyViews, error) {
	if mock.ListByProfileFunc == nil {
		panic("analyticsRepoMock.ListByProfileFunc: method is nil but analyticsRepo.ListByProfile was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
		Since     time.Time
	}{Ctx: ctx, ProfileID: profileID, Since: since}
	mock.lockListByProfile.Lock()
	mock.calls.ListByProfile = append(mock.calls.ListByProfile, callInfo)
	mock.lockListByProfile.Unlock()
	return mock.ListByProfileFunc(ctx, profileID, since)
}

func (mock *analyticsRepoMock) ListByProfileCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
	Since     time.Time
} {
	mock.lockListByProfile.RLock()
	calls := mock.calls.ListByProfile
	mock.lockListByProfile.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

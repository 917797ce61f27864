package schema

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

var _ snippetRepo = &snippetRepoMock{}

type snippetRepoMock struct {
	UpsertFunc       func(ctx context.Context, s domain.SchemaSnippet) (*domain.SchemaSnippet, error)
	GetByProfileFunc func(ctx context.Context, profileID uuid.UUID) (*domain.SchemaSnippet, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			S   domain.SchemaSnippet
		}
		GetByProfile []struct {
			Ctx       context.Context
			ProfileID uuid.UUID
		}
	}
	lockUpsert       sync.RWMutex
	lockGetByProfile sync.RWMutex
}

func (mock *snippetRepoMock) Upsert(ctx context.Context, s domain.SchemaSnippet) (*domain.SchemaSnippet, error) {
	if mock.UpsertFunc == nil {
		panic("snippetRepoMock.UpsertFunc: method is nil but snippetRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.SchemaSnippet
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *snippetRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   domain.SchemaSnippet
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *snippetRepoMock) GetByProfile(ctx context.Context, profileID uuid.UUID) (*domain.SchemaSnippet, error) {
	if mock.GetByProfileFunc == nil {
		panic("snippetRepoMock.GetByProfileFunc: method is nil but snippetRepo.GetByProfile was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProfileID uuid.UUID
	}{Ctx: ctx, ProfileID: profileID}
	mock.lockGetByProfile.Lock()
	mock.calls.GetByProfile = append(mock.calls.GetByProfile, callInfo)
	mock.lockGetByProfile.Unlock()
	return mock.GetByProfileFunc(ctx, profileID)
}

func (mock *snippetRepoMock) GetByProfileCalls() []struct {
	Ctx       context.Context
	ProfileID uuid.UUID
} {
	mock.lockGetByProfile.RLock()
	calls := mock.calls.GetByProfile
	mock.lockGetByProfile.RUnlock()
	return calls
}

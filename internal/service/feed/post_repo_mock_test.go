package feed

import (
	"context"
	"sync"
	"time"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	ListByAuthorsFunc        func(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error)
	CountByAuthorsFunc       func(ctx context.Context, authorIDs []string) (int, error)
	ListUnreadByAuthorsFunc  func(ctx context.Context, viewerID string, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error)
	CountUnreadByAuthorsFunc func(ctx context.Context, viewerID string, authorIDs []string) (int, error)
	ListNeighborFunc         func(ctx context.Context, viewerID string, minAge time.Duration, limit, offset int) ([]domain.ContentSummary, error)
	CountNeighborFunc        func(ctx context.Context, viewerID string, minAge time.Duration) (int, error)

	calls struct {
		ListByAuthors []struct {
			AuthorIDs []string
			Limit     int
			Offset    int
		}
		CountByAuthors []struct {
			AuthorIDs []string
		}
		ListUnreadByAuthors []struct {
			ViewerID  string
			AuthorIDs []string
			Limit     int
			Offset    int
		}
		CountUnreadByAuthors []struct {
			ViewerID  string
			AuthorIDs []string
		}
		ListNeighbor []struct {
			ViewerID string
			MinAge   time.Duration
			Limit    int
			Offset   int
		}
		CountNeighbor []struct {
			ViewerID string
			MinAge   time.Duration
		}
	}
	lockListByAuthors        sync.RWMutex
	lockCountByAuthors       sync.RWMutex
	lockListUnreadByAuthors  sync.RWMutex
	lockCountUnreadByAuthors sync.RWMutex
	lockListNeighbor         sync.RWMutex
	lockCountNeighbor        sync.RWMutex
}

func (mock *postRepoMock) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error) {
	if mock.ListByAuthorsFunc == nil {
		panic("postRepoMock.ListByAuthorsFunc: method is nil but postRepo.ListByAuthors was just called")
	}
	callInfo := struct {
		AuthorIDs []string
		Limit     int
		Offset    int
	}{AuthorIDs: authorIDs, Limit: limit, Offset: offset}
	mock.lockListByAuthors.Lock()
	mock.calls.ListByAuthors = append(mock.calls.ListByAuthors, callInfo)
	mock.lockListByAuthors.Unlock()
	return mock.ListByAuthorsFunc(ctx, authorIDs, limit, offset)
}

func (mock *postRepoMock) ListByAuthorsCalls() []struct {
	AuthorIDs []string
	Limit     int
	Offset    int
} {
	mock.lockListByAuthors.RLock()
	calls := mock.calls.ListByAuthors
	mock.lockListByAuthors.RUnlock()
	return calls
}

func (mock *postRepoMock) CountByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if mock.CountByAuthorsFunc == nil {
		panic("postRepoMock.CountByAuthorsFunc: method is nil but postRepo.CountByAuthors was just called")
	}
	callInfo := struct{ AuthorIDs []string }{AuthorIDs: authorIDs}
	mock.lockCountByAuthors.Lock()
	mock.calls.CountByAuthors = append(mock.calls.CountByAuthors, callInfo)
	mock.lockCountByAuthors.Unlock()
	return mock.CountByAuthorsFunc(ctx, authorIDs)
}

func (mock *postRepoMock) CountByAuthorsCalls() []struct{ AuthorIDs []string } {
	mock.lockCountByAuthors.RLock()
	calls := mock.calls.CountByAuthors
	mock.lockCountByAuthors.RUnlock()
	return calls
}

func (mock *postRepoMock) ListUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error) {
	if mock.ListUnreadByAuthorsFunc == nil {
		panic("postRepoMock.ListUnreadByAuthorsFunc: method is nil but postRepo.ListUnreadByAuthors was just called")
	}
	callInfo := struct {
		ViewerID  string
		AuthorIDs []string
		Limit     int
		Offset    int
	}{ViewerID: viewerID, AuthorIDs: authorIDs, Limit: limit, Offset: offset}
	mock.lockListUnreadByAuthors.Lock()
	mock.calls.ListUnreadByAuthors = append(mock.calls.ListUnreadByAuthors, callInfo)
	mock.lockListUnreadByAuthors.Unlock()
	return mock.ListUnreadByAuthorsFunc(ctx, viewerID, authorIDs, limit, offset)
}

func (mock *postRepoMock) ListUnreadByAuthorsCalls() []struct {
	ViewerID  string
	AuthorIDs []string
	Limit     int
	Offset    int
} {
	mock.lockListUnreadByAuthors.RLock()
	calls := mock.calls.ListUnreadByAuthors
	mock.lockListUnreadByAuthors.RUnlock()
	return calls
}

func (mock *postRepoMock) CountUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string) (int, error) {
	if mock.CountUnreadByAuthorsFunc == nil {
		panic("postRepoMock.CountUnreadByAuthorsFunc: method is nil but postRepo.CountUnreadByAuthors was just called")
	}
	callInfo := struct {
		ViewerID  string
		AuthorIDs []string
	}{ViewerID: viewerID, AuthorIDs: authorIDs}
	mock.lockCountUnreadByAuthors.Lock()
	mock.calls.CountUnreadByAuthors = append(mock.calls.CountUnreadByAuthors, callInfo)
	mock.lockCountUnreadByAuthors.Unlock()
	return mock.CountUnreadByAuthorsFunc(ctx, viewerID, authorIDs)
}

func (mock *postRepoMock) CountUnreadByAuthorsCalls() []struct {
	ViewerID  string
	AuthorIDs []string
} {
	mock.lockCountUnreadByAuthors.RLock()
	calls := mock.calls.CountUnreadByAuthors
	mock.lockCountUnreadByAuthors.RUnlock()
	return calls
}

func (mock *postRepoMock) ListNeighbor(ctx context.Context, viewerID string, minAge time.Duration, limit, offset int) ([]domain.ContentSummary, error) {
	if mock.ListNeighborFunc == nil {
		panic("postRepoMock.ListNeighborFunc: method is nil but postRepo.ListNeighbor was just called")
	}
	callInfo := struct {
		ViewerID string
		MinAge   time.Duration
		Limit    int
		Offset   int
	}{ViewerID: viewerID, MinAge: minAge, Limit: limit, Offset: offset}
	mock.lockListNeighbor.Lock()
	mock.calls.ListNeighbor = append(mock.calls.ListNeighbor, callInfo)
	mock.lockListNeighbor.Unlock()
	return mock.ListNeighborFunc(ctx, viewerID, minAge, limit, offset)
}

func (mock *postRepoMock) ListNeighborCalls() []struct {
	ViewerID string
	MinAge   time.Duration
	Limit    int
	Offset   int
} {
	mock.lockListNeighbor.RLock()
	calls := mock.calls.ListNeighbor
	mock.lockListNeighbor.RUnlock()
	return calls
}

func (mock *postRepoMock) CountNeighbor(ctx context.Context, viewerID string, minAge time.Duration) (int, error) {
	if mock.CountNeighborFunc == nil {
		panic("postRepoMock.CountNeighborFunc: method is nil but postRepo.CountNeighbor was just called")
	}
	callInfo := struct {
		ViewerID string
		MinAge   time.Duration
	}{ViewerID: viewerID, MinAge: minAge}
	mock.lockCountNeighbor.Lock()
	mock.calls.CountNeighbor = append(mock.calls.CountNeighbor, callInfo)
	mock.lockCountNeighbor.Unlock()
	return mock.CountNeighborFunc(ctx, viewerID, minAge)
}

func (mock *postRepoMock) CountNeighborCalls() []struct {
	ViewerID string
	MinAge   time.Duration
} {
	mock.lockCountNeighbor.RLock()
	calls := mock.calls.CountNeighbor
	mock.lockCountNeighbor.RUnlock()
	return calls
}

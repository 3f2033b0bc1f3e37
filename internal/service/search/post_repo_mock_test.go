package search

import (
	"context"
	"sync"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	SearchByTitleFunc func(ctx context.Context, query string, limit, offset int) ([]domain.ContentSummary, error)
	CountByTitleFunc  func(ctx context.Context, query string) (int, error)

	calls struct {
		SearchByTitle []struct {
			Query  string
			Limit  int
			Offset int
		}
		CountByTitle []struct {
			Query string
		}
	}
	lockSearchByTitle sync.RWMutex
	lockCountByTitle  sync.RWMutex
}

func (mock *postRepoMock) SearchByTitle(ctx context.Context, query string, limit, offset int) ([]domain.ContentSummary, error) {
	if mock.SearchByTitleFunc == nil {
		panic("postRepoMock.SearchByTitleFunc: method is nil but postRepo.SearchByTitle was just called")
	}
	callInfo := struct {
		Query  string
		Limit  int
		Offset int
	}{Query: query, Limit: limit, Offset: offset}
	mock.lockSearchByTitle.Lock()
	mock.calls.SearchByTitle = append(mock.calls.SearchByTitle, callInfo)
	mock.lockSearchByTitle.Unlock()
	return mock.SearchByTitleFunc(ctx, query, limit, offset)
}

func (mock *postRepoMock) SearchByTitleCalls() []struct {
	Query  string
	Limit  int
	Offset int
} {
	mock.lockSearchByTitle.RLock()
	calls := mock.calls.SearchByTitle
	mock.lockSearchByTitle.RUnlock()
	return calls
}

func (mock *postRepoMock) CountByTitle(ctx context.Context, query string) (int, error) {
	if mock.CountByTitleFunc == nil {
		panic("postRepoMock.CountByTitleFunc: method is nil but postRepo.CountByTitle was just called")
	}
	callInfo := struct{ Query string }{Query: query}
	mock.lockCountByTitle.Lock()
	mock.calls.CountByTitle = append(mock.calls.CountByTitle, callInfo)
	mock.lockCountByTitle.Unlock()
	return mock.CountByTitleFunc(ctx, query)
}

func (mock *postRepoMock) CountByTitleCalls() []struct{ Query string } {
	mock.lockCountByTitle.RLock()
	calls := mock.calls.CountByTitle
	mock.lockCountByTitle.RUnlock()
	return calls
}

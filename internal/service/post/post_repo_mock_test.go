package post

import (
	"context"
	"sync"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CreateFunc        func(ctx context.Context, p domain.Post) (domain.Post, error)
	GetByIDFunc       func(ctx context.Context, id int64) (domain.Post, error)
	ListByParentFunc  func(ctx context.Context, parentID string, limit, offset int) ([]domain.Post, error)
	CountByParentFunc func(ctx context.Context, parentID string) (int, error)
	UpdateFunc        func(ctx context.Context, p domain.Post) (domain.Post, error)
	SoftDeleteFunc    func(ctx context.Context, id int64) error
	ToggleScriptFunc  func(ctx context.Context, postID int64, parentID string) (bool, error)
	ToggleHeartFunc   func(ctx context.Context, postID int64, parentID string) (bool, error)
	MarkViewedFunc    func(ctx context.Context, postID int64, viewerID string) error

	calls struct {
		Create []struct {
			P domain.Post
		}
		GetByID []struct {
			ID int64
		}
		ListByParent []struct {
			ParentID string
			Limit    int
			Offset   int
		}
		CountByParent []struct {
			ParentID string
		}
		Update []struct {
			P domain.Post
		}
		SoftDelete []struct {
			ID int64
		}
		ToggleScript []struct {
			PostID   int64
			ParentID string
		}
		ToggleHeart []struct {
			PostID   int64
			ParentID string
		}
		MarkViewed []struct {
			PostID   int64
			ViewerID string
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByParent  sync.RWMutex
	lockCountByParent sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSoftDelete    sync.RWMutex
	lockToggleScript  sync.RWMutex
	lockToggleHeart   sync.RWMutex
	lockMarkViewed    sync.RWMutex
}

func (mock *postRepoMock) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but postRepo.Create was just called")
	}
	callInfo := struct{ P domain.Post }{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *postRepoMock) CreateCalls() []struct{ P domain.Post } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postRepoMock) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *postRepoMock) ListByParent(ctx context.Context, parentID string, limit, offset int) ([]domain.Post, error) {
	if mock.ListByParentFunc == nil {
		panic("postRepoMock.ListByParentFunc: method is nil but postRepo.ListByParent was just called")
	}
	callInfo := struct {
		ParentID string
		Limit    int
		Offset   int
	}{ParentID: parentID, Limit: limit, Offset: offset}
	mock.lockListByParent.Lock()
	mock.calls.ListByParent = append(mock.calls.ListByParent, callInfo)
	mock.lockListByParent.Unlock()
	return mock.ListByParentFunc(ctx, parentID, limit, offset)
}

func (mock *postRepoMock) ListByParentCalls() []struct {
	ParentID string
	Limit    int
	Offset   int
} {
	mock.lockListByParent.RLock()
	calls := mock.calls.ListByParent
	mock.lockListByParent.RUnlock()
	return calls
}

func (mock *postRepoMock) CountByParent(ctx context.Context, parentID string) (int, error) {
	if mock.CountByParentFunc == nil {
		panic("postRepoMock.CountByParentFunc: method is nil but postRepo.CountByParent was just called")
	}
	callInfo := struct{ ParentID string }{ParentID: parentID}
	mock.lockCountByParent.Lock()
	mock.calls.CountByParent = append(mock.calls.CountByParent, callInfo)
	mock.lockCountByParent.Unlock()
	return mock.CountByParentFunc(ctx, parentID)
}

func (mock *postRepoMock) CountByParentCalls() []struct{ ParentID string } {
	mock.lockCountByParent.RLock()
	calls := mock.calls.CountByParent
	mock.lockCountByParent.RUnlock()
	return calls
}

func (mock *postRepoMock) Update(ctx context.Context, p domain.Post) (domain.Post, error) {
	if mock.UpdateFunc == nil {
		panic("postRepoMock.UpdateFunc: method is nil but postRepo.Update was just called")
	}
	callInfo := struct{ P domain.Post }{P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *postRepoMock) UpdateCalls() []struct{ P domain.Post } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *postRepoMock) SoftDelete(ctx context.Context, id int64) error {
	if mock.SoftDeleteFunc == nil {
		panic("postRepoMock.SoftDeleteFunc: method is nil but postRepo.SoftDelete was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *postRepoMock) SoftDeleteCalls() []struct{ ID int64 } {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *postRepoMock) ToggleScript(ctx context.Context, postID int64, parentID string) (bool, error) {
	if mock.ToggleScriptFunc == nil {
		panic("postRepoMock.ToggleScriptFunc: method is nil but postRepo.ToggleScript was just called")
	}
	callInfo := struct {
		PostID   int64
		ParentID string
	}{PostID: postID, ParentID: parentID}
	mock.lockToggleScript.Lock()
	mock.calls.ToggleScript = append(mock.calls.ToggleScript, callInfo)
	mock.lockToggleScript.Unlock()
	return mock.ToggleScriptFunc(ctx, postID, parentID)
}

func (mock *postRepoMock) ToggleScriptCalls() []struct {
	PostID   int64
	ParentID string
} {
	mock.lockToggleScript.RLock()
	calls := mock.calls.ToggleScript
	mock.lockToggleScript.RUnlock()
	return calls
}

func (mock *postRepoMock) ToggleHeart(ctx context.Context, postID int64, parentID string) (bool, error) {
	if mock.ToggleHeartFunc == nil {
		panic("postRepoMock.ToggleHeartFunc: method is nil but postRepo.ToggleHeart was just called")
	}
	callInfo := struct {
		PostID   int64
		ParentID string
	}{PostID: postID, ParentID: parentID}
	mock.lockToggleHeart.Lock()
	mock.calls.ToggleHeart = append(mock.calls.ToggleHeart, callInfo)
	mock.lockToggleHeart.Unlock()
	return mock.ToggleHeartFunc(ctx, postID, parentID)
}

func (mock *postRepoMock) ToggleHeartCalls() []struct {
	PostID   int64
	ParentID string
} {
	mock.lockToggleHeart.RLock()
	calls := mock.calls.ToggleHeart
	mock.lockToggleHeart.RUnlock()
	return calls
}

func (mock *postRepoMock) MarkViewed(ctx context.Context, postID int64, viewerID string) error {
	if mock.MarkViewedFunc == nil {
		panic("postRepoMock.MarkViewedFunc: method is nil but postRepo.MarkViewed was just called")
	}
	callInfo := struct {
		PostID   int64
		ViewerID string
	}{PostID: postID, ViewerID: viewerID}
	mock.lockMarkViewed.Lock()
	mock.calls.MarkViewed = append(mock.calls.MarkViewed, callInfo)
	mock.lockMarkViewed.Unlock()
	return mock.MarkViewedFunc(ctx, postID, viewerID)
}

func (mock *postRepoMock) MarkViewedCalls() []struct {
	PostID   int64
	ViewerID string
} {
	mock.lockMarkViewed.RLock()
	calls := mock.calls.MarkViewed
	mock.lockMarkViewed.RUnlock()
	return calls
}

package feed

import (
	"context"
	"sync"
)

var _ relationRepo = &relationRepoMock{}

type relationRepoMock struct {
	ListMateIDsFunc   func(ctx context.Context, parentID string) ([]string, error)
	ListFriendIDsFunc func(ctx context.Context, parentID string) ([]string, error)

	calls struct {
		ListMateIDs []struct {
			ParentID string
		}
		ListFriendIDs []struct {
			ParentID string
		}
	}
	lockListMateIDs   sync.RWMutex
	lockListFriendIDs sync.RWMutex
}

func (mock *relationRepoMock) ListMateIDs(ctx context.Context, parentID string) ([]string, error) {
	if mock.ListMateIDsFunc == nil {
		panic("relationRepoMock.ListMateIDsFunc: method is nil but relationRepo.ListMateIDs was just called")
	}
	callInfo := struct{ ParentID string }{ParentID: parentID}
	mock.lockListMateIDs.Lock()
	mock.calls.ListMateIDs = append(mock.calls.ListMateIDs, callInfo)
	mock.lockListMateIDs.Unlock()
	return mock.ListMateIDsFunc(ctx, parentID)
}

func (mock *relationRepoMock) ListMateIDsCalls() []struct{ ParentID string } {
	mock.lockListMateIDs.RLock()
	calls := mock.calls.ListMateIDs
	mock.lockListMateIDs.RUnlock()
	return calls
}

func (mock *relationRepoMock) ListFriendIDs(ctx context.Context, parentID string) ([]string, error) {
	if mock.ListFriendIDsFunc == nil {
		panic("relationRepoMock.ListFriendIDsFunc: method is nil but relationRepo.ListFriendIDs was just called")
	}
	callInfo := struct{ ParentID string }{ParentID: parentID}
	mock.lockListFriendIDs.Lock()
	mock.calls.ListFriendIDs = append(mock.calls.ListFriendIDs, callInfo)
	mock.lockListFriendIDs.Unlock()
	return mock.ListFriendIDsFunc(ctx, parentID)
}

func (mock *relationRepoMock) ListFriendIDsCalls() []struct{ ParentID string } {
	mock.lockListFriendIDs.RLock()
	calls := mock.calls.ListFriendIDs
	mock.lockListFriendIDs.RUnlock()
	return calls
}

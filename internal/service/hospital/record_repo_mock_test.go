package hospital

import (
	"context"
	"sync"
	"time"

	hospitaldb "github.com/nestling-app/nestling-backend/internal/adapter/postgres/hospital"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	GetDiaryFunc         func(ctx context.Context, diaryID int64) (domain.Diary, error)
	GetDiaryByRecordFunc func(ctx context.Context, hospitalID int64) (domain.Diary, error)
	CreateFunc           func(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error)
	GetByIDFunc          func(ctx context.Context, id int64) (hospitaldb.Record, error)
	ListByDiaryFunc      func(ctx context.Context, diaryID int64) ([]hospitaldb.Record, error)
	ListByDiaryRangeFunc func(ctx context.Context, diaryID int64, start, end time.Time) ([]hospitaldb.Record, error)
	ExistsOnDateFunc     func(ctx context.Context, diaryID int64, day time.Time) (bool, error)
	UpdateFunc           func(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error)
	SoftDeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		GetDiary []struct {
			DiaryID int64
		}
		GetDiaryByRecord []struct {
			HospitalID int64
		}
		Create []struct {
			Rec     domain.HospitalRecord
			Special string
		}
		GetByID []struct {
			ID int64
		}
		ListByDiary []struct {
			DiaryID int64
		}
		ListByDiaryRange []struct {
			DiaryID int64
			Start   time.Time
			End     time.Time
		}
		ExistsOnDate []struct {
			DiaryID int64
			Day     time.Time
		}
		Update []struct {
			Rec     domain.HospitalRecord
			Special string
		}
		SoftDelete []struct {
			ID int64
		}
	}
	lockGetDiary         sync.RWMutex
	lockGetDiaryByRecord sync.RWMutex
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockListByDiary      sync.RWMutex
	lockListByDiaryRange sync.RWMutex
	lockExistsOnDate     sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSoftDelete       sync.RWMutex
}

func (mock *recordRepoMock) GetDiary(ctx context.Context, diaryID int64) (domain.Diary, error) {
	if mock.GetDiaryFunc == nil {
		panic("recordRepoMock.GetDiaryFunc: method is nil but recordRepo.GetDiary was just called")
	}
	callInfo := struct{ DiaryID int64 }{DiaryID: diaryID}
	mock.lockGetDiary.Lock()
	mock.calls.GetDiary = append(mock.calls.GetDiary, callInfo)
	mock.lockGetDiary.Unlock()
	return mock.GetDiaryFunc(ctx, diaryID)
}

func (mock *recordRepoMock) GetDiaryCalls() []struct{ DiaryID int64 } {
	mock.lockGetDiary.RLock()
	calls := mock.calls.GetDiary
	mock.lockGetDiary.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetDiaryByRecord(ctx context.Context, hospitalID int64) (domain.Diary, error) {
	if mock.GetDiaryByRecordFunc == nil {
		panic("recordRepoMock.GetDiaryByRecordFunc: method is nil but recordRepo.GetDiaryByRecord was just called")
	}
	callInfo := struct{ HospitalID int64 }{HospitalID: hospitalID}
	mock.lockGetDiaryByRecord.Lock()
	mock.calls.GetDiaryByRecord = append(mock.calls.GetDiaryByRecord, callInfo)
	mock.lockGetDiaryByRecord.Unlock()
	return mock.GetDiaryByRecordFunc(ctx, hospitalID)
}

func (mock *recordRepoMock) GetDiaryByRecordCalls() []struct{ HospitalID int64 } {
	mock.lockGetDiaryByRecord.RLock()
	calls := mock.calls.GetDiaryByRecord
	mock.lockGetDiaryByRecord.RUnlock()
	return calls
}

func (mock *recordRepoMock) Create(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	callInfo := struct {
		Rec     domain.HospitalRecord
		Special string
	}{Rec: rec, Special: special}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec, special)
}

func (mock *recordRepoMock) CreateCalls() []struct {
	Rec     domain.HospitalRecord
	Special string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id int64) (hospitaldb.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByDiary(ctx context.Context, diaryID int64) ([]hospitaldb.Record, error) {
	if mock.ListByDiaryFunc == nil {
		panic("recordRepoMock.ListByDiaryFunc: method is nil but recordRepo.ListByDiary was just called")
	}
	callInfo := struct{ DiaryID int64 }{DiaryID: diaryID}
	mock.lockListByDiary.Lock()
	mock.calls.ListByDiary = append(mock.calls.ListByDiary, callInfo)
	mock.lockListByDiary.Unlock()
	return mock.ListByDiaryFunc(ctx, diaryID)
}

func (mock *recordRepoMock) ListByDiaryCalls() []struct{ DiaryID int64 } {
	mock.lockListByDiary.RLock()
	calls := mock.calls.ListByDiary
	mock.lockListByDiary.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListByDiaryRange(ctx context.Context, diaryID int64, start, end time.Time) ([]hospitaldb.Record, error) {
	if mock.ListByDiaryRangeFunc == nil {
		panic("recordRepoMock.ListByDiaryRangeFunc: method is nil but recordRepo.ListByDiaryRange was just called")
	}
	callInfo := struct {
		DiaryID int64
		Start   time.Time
		End     time.Time
	}{DiaryID: diaryID, Start: start, End: end}
	mock.lockListByDiaryRange.Lock()
	mock.calls.ListByDiaryRange = append(mock.calls.ListByDiaryRange, callInfo)
	mock.lockListByDiaryRange.Unlock()
	return mock.ListByDiaryRangeFunc(ctx, diaryID, start, end)
}

func (mock *recordRepoMock) ListByDiaryRangeCalls() []struct {
	DiaryID int64
	Start   time.Time
	End     time.Time
} {
	mock.lockListByDiaryRange.RLock()
	calls := mock.calls.ListByDiaryRange
	mock.lockListByDiaryRange.RUnlock()
	return calls
}

func (mock *recordRepoMock) ExistsOnDate(ctx context.Context, diaryID int64, day time.Time) (bool, error) {
	if mock.ExistsOnDateFunc == nil {
		panic("recordRepoMock.ExistsOnDateFunc: method is nil but recordRepo.ExistsOnDate was just called")
	}
	callInfo := struct {
		DiaryID int64
		Day     time.Time
	}{DiaryID: diaryID, Day: day}
	mock.lockExistsOnDate.Lock()
	mock.calls.ExistsOnDate = append(mock.calls.ExistsOnDate, callInfo)
	mock.lockExistsOnDate.Unlock()
	return mock.ExistsOnDateFunc(ctx, diaryID, day)
}

func (mock *recordRepoMock) ExistsOnDateCalls() []struct {
	DiaryID int64
	Day     time.Time
} {
	mock.lockExistsOnDate.RLock()
	calls := mock.calls.ExistsOnDate
	mock.lockExistsOnDate.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Rec     domain.HospitalRecord
		Special string
	}{Rec: rec, Special: special}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, rec, special)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Rec     domain.HospitalRecord
	Special string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *recordRepoMock) SoftDelete(ctx context.Context, id int64) error {
	if mock.SoftDeleteFunc == nil {
		panic("recordRepoMock.SoftDeleteFunc: method is nil but recordRepo.SoftDelete was just called")
	}
	callInfo := struct{ ID int64 }{ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *recordRepoMock) SoftDeleteCalls() []struct{ ID int64 } {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

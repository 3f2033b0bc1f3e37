package domain

import "time"

// Diary is a parenting diary. Born distinguishes maternity diaries (0,
// pre-birth) from child diaries; hospital records attach only to the former.
type Diary struct {
	ID         int64
	ParentID   string
	BabyID     *int64
	Born       int
	CreateTime time.Time
	DeleteTime *time.Time
}

// IsMaternity reports whether the diary accepts hospital records.
func (d *Diary) IsMaternity() bool {
	return d.Born == 0
}

// HospitalRecord is one maternity-checkup entry. The fixed measurements
// live in their own columns; Observations is the decoded form of the
// free-form text column (see ObservationCodec). CreateTime doubles as the
// visit date: at most one record per diary per calendar day.
type HospitalRecord struct {
	ID           int64
	DiaryID      int64
	BabyID       *int64
	ParentKG     *float64
	BloodPress   *string
	BabyKG       *float64
	BabyCM       *float64
	Observations ObservationSet
	NextVisit    *time.Time
	CreateTime   time.Time
	ModifyTime   *time.Time
	DeleteTime   *time.Time
}

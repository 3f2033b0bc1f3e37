package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedParent creates a parent account with generated email and nickname.
// Returns a filled domain.Parent.
func SeedParent(t *testing.T, pool *pgxpool.Pool) domain.Parent {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	parent := domain.Parent{
		ID:           "parent-" + suffix,
		Email:        "parent-" + suffix + "@example.com",
		Nickname:     "nick-" + suffix,
		SignInMethod: "email",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO parent (parent_id, password, email, nickname, sign_in_method)
		 VALUES ($1, $2, $3, $4, $5)`,
		parent.ID, nil, parent.Email, parent.Nickname, parent.SignInMethod,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParent insert parent: %v", err)
	}

	return parent
}

// SeedPost creates a live post authored by the given parent.
// createTime lets tests control feed ordering.
func SeedPost(t *testing.T, pool *pgxpool.Pool, parentID, title string, createTime time.Time) domain.Post {
	t.Helper()
	ctx := context.Background()

	post := domain.Post{
		ParentID:   parentID,
		Title:      title,
		Content:    "content of " + title,
		CreateTime: createTime,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO post (parent_id, reveal, title, content, create_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING post_id`,
		post.ParentID, post.Reveal, post.Title, post.Content, post.CreateTime,
	).Scan(&post.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert post: %v", err)
	}

	return post
}

// SeedMateLink links two parents as mates.
func SeedMateLink(t *testing.T, pool *pgxpool.Pool, parentID1, parentID2 string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ppconnect (parent_id_1, parent_id_2) VALUES ($1, $2)`,
		parentID1, parentID2,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMateLink insert ppconnect: %v", err)
	}
}

// SeedFriend records a confirmed friend edge from parentID to friendID.
func SeedFriend(t *testing.T, pool *pgxpool.Pool, parentID, friendID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pfriend (parent_id, friend_id) VALUES ($1, $2)`,
		parentID, friendID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFriend insert pfriend: %v", err)
	}
}

// SeedView records a read marker for viewerID on postID.
func SeedView(t *testing.T, pool *pgxpool.Pool, postID int64, viewerID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pview (post_id, parent_id) VALUES ($1, $2)`,
		postID, viewerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedView insert pview: %v", err)
	}
}

// SeedHeart records a like for parentID on postID.
func SeedHeart(t *testing.T, pool *pgxpool.Pool, postID int64, parentID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pheart (post_id, parent_id) VALUES ($1, $2)`,
		postID, parentID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHeart insert pheart: %v", err)
	}
}

// SeedComment records a comment by parentID on postID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, postID int64, parentID, content string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pcomment (post_id, parent_id, content) VALUES ($1, $2, $3)`,
		postID, parentID, content,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert pcomment: %v", err)
	}
}

// SeedDiary creates a diary for the given parent. born=0 marks a maternity diary.
func SeedDiary(t *testing.T, pool *pgxpool.Pool, parentID string, born int) domain.Diary {
	t.Helper()

	diary := domain.Diary{
		ParentID: parentID,
		Born:     born,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO diary (parent_id, born) VALUES ($1, $2)
		 RETURNING diary_id, create_time`,
		diary.ParentID, diary.Born,
	).Scan(&diary.ID, &diary.CreateTime)
	if err != nil {
		t.Fatalf("testhelper: SeedDiary insert diary: %v", err)
	}

	return diary
}

// SeedHospital creates a live hospital record in a diary with the given visit
// time and raw observation blob.
func SeedHospital(t *testing.T, pool *pgxpool.Pool, diaryID int64, visit time.Time, special string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO hospital (diary_id, special, create_time) VALUES ($1, $2, $3)
		 RETURNING hospital_id`,
		diaryID, special, visit,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedHospital insert hospital: %v", err)
	}

	return id
}

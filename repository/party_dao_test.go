package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cydxin/party-sdk/models"
	"github.com/cydxin/party-sdk/service"
	mysqldrv "github.com/go-sql-driver/mysql"
)

var postColumns = []string{"id", "writer_id", "theme_id", "title", "content", "max_participants", "current_participants", "deadline", "is_closed", "created_at", "updated_at"}

func TestPartyDAO_GetPost_ForUpdate(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows(postColumns).
		AddRow(uint64(7), uint64(1), uint64(3), "剧本杀", "", 4, 2, now, false, now, now)
	mock.ExpectQuery("SELECT \\* FROM `pt_party_post` WHERE id = \\?.*FOR UPDATE").
		WillReturnRows(rows)

	post, err := NewPartyDAO(gormDB).GetPost(context.Background(), 7, true)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post.ID != 7 || post.CurrentParticipants != 2 || post.MaxParticipants != 4 {
		t.Fatalf("unexpected post: %#v", post)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPartyDAO_GetPost_NotFound(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectQuery("SELECT \\* FROM `pt_party_post` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := NewPartyDAO(gormDB).GetPost(context.Background(), 99, false)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPartyDAO_SaveCounters(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	updateRe := regexp.MustCompile("UPDATE `pt_party_post` SET .*`current_participants`=\\?.*`is_closed`=\\?.* WHERE id = \\?")
	mock.ExpectExec(updateRe.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	post := &models.PartyPost{ID: 7, MaxParticipants: 2, CurrentParticipants: 2, IsClosed: true}
	if err := NewPartyDAO(gormDB).SaveCounters(context.Background(), post); err != nil {
		t.Fatalf("SaveCounters: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPartyDAO_CreateJoin_Duplicate(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectExec("INSERT INTO `pt_party_join`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry '7-2' for key 'idx_post_user'"})

	err := NewPartyDAO(gormDB).CreateJoin(context.Background(), &models.PartyJoin{PostID: 7, UserID: 2, Status: models.JoinStatusPending})
	if !errors.Is(err, service.ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
}

func TestPartyDAO_DeletePost(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `pt_party_join` WHERE post_id = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `pt_party_post` WHERE id = ?")).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewPartyDAO(gormDB).DeletePost(context.Background(), 7); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPartyDAO_DeletePost_Missing(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectExec("DELETE FROM `pt_party_join`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `pt_party_post`").WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPartyDAO(gormDB).DeletePost(context.Background(), 7)
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPartyDAO_ListPosts_Filters(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	day := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	closed := false

	mock.ExpectQuery("SELECT \\* FROM `pt_party_post` WHERE \\(deadline >= \\? AND deadline < \\?\\) AND is_closed = \\? ORDER BY created_at DESC,id DESC LIMIT \\? OFFSET \\?").
		WithArgs(
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
			false, 10, 20,
		).
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := NewPartyDAO(gormDB).ListPosts(context.Background(), service.PostFilter{Page: 2, Size: 10, Deadline: &day, IsClosed: &closed})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPartyDAO_ListJoinsByUser_Statuses(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer func() { _ = sqlDB.Close() }()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "post_id", "user_id", "status", "created_at", "updated_at"}).
		AddRow(uint64(1), uint64(7), uint64(2), "APPROVED", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `pt_party_join` WHERE user_id = ? AND status IN (?,?) ORDER BY updated_at DESC")).
		WithArgs(uint64(2), models.JoinStatusApproved, models.JoinStatusRejected).
		WillReturnRows(rows)

	joins, err := NewPartyDAO(gormDB).ListJoinsByUser(context.Background(), 2, models.JoinStatusApproved, models.JoinStatusRejected)
	if err != nil {
		t.Fatalf("ListJoinsByUser: %v", err)
	}
	if len(joins) != 1 || joins[0].Status != models.JoinStatusApproved {
		t.Fatalf("unexpected joins: %#v", joins)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

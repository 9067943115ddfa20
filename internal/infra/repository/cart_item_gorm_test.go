package repository_test

import (
	"context"
	"testing"

	infraRepo "kiosk/internal/infra/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

// 更新対象は未注文の行だけ。注文済みの行が混ざっていてもno-opで冪等。
func TestCartItemGorm_MarkOrdered_FiltersOrderedRows(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := infraRepo.NewCartItemGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET .+ WHERE id IN .+ AND is_ordered = .+`).
		WithArgs(true, "o1", "c1", "c2", false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := r.MarkOrdered(context.Background(), "o1", []string{"c1", "c2"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 全行が注文済みでも（0行更新でも）エラーにしない
func TestCartItemGorm_MarkOrdered_AllAlreadyOrderedIsNoOp(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := infraRepo.NewCartItemGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET .+ WHERE id IN .+ AND is_ordered = .+`).
		WithArgs(true, "o1", "c1", false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.MarkOrdered(context.Background(), "o1", []string{"c1"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 空のID列はDBに触らない
func TestCartItemGorm_MarkOrdered_EmptyIDs(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := infraRepo.NewCartItemGormRepository(gdb)

	err := r.MarkOrdered(context.Background(), "o1", nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

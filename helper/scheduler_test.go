package helper

import (
	"testing"
	"time"

	"reservation_manager/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestScheduleExpiration(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO "expiration_jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ScheduleExpiration(database.DB, "abc123", time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ON CONFLICT DO NOTHING: đăng ký lại job cho cùng reservation không tạo trùng
func TestScheduleExpirationIdempotent(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectExec(`INSERT INTO "expiration_jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := ScheduleExpiration(database.DB, "abc123", time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func jobColumns() []string {
	return []string{"reservation_id", "fires_at", "attempts", "picked_at", "last_error"}
}

func TestDispatchDueExpirations(t *testing.T) {
	mock := setupMockDB(t)
	expireQueue = make(chan string, 4)

	mock.ExpectQuery(`SELECT (.+) FROM "expiration_jobs"`).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow("abc123", time.Now().Add(-time.Minute), 0, nil, ""))
	mock.ExpectExec(`UPDATE "expiration_jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	DispatchDueExpirations()

	assert.Len(t, expireQueue, 1)
	assert.Equal(t, "abc123", <-expireQueue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatchDueExpirationsClaimLost(t *testing.T) {
	mock := setupMockDB(t)
	expireQueue = make(chan string, 4)

	mock.ExpectQuery(`SELECT (.+) FROM "expiration_jobs"`).
		WillReturnRows(sqlmock.NewRows(jobColumns()).
			AddRow("abc123", time.Now().Add(-time.Minute), 1, nil, ""))
	// Tick khác đã set picked_at trước, guard không match nữa
	mock.ExpectExec(`UPDATE "expiration_jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	DispatchDueExpirations()

	assert.Len(t, expireQueue, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReconcileOnStartup(t *testing.T) {
	mock := setupMockDB(t)

	// 1. reservation ACTIVE quá hạn thành EXPIRED
	mock.ExpectExec(`UPDATE "reservations"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	// 2. tính lại number_available từ tập reservation
	mock.ExpectExec(`UPDATE tickets`).
		WillReturnResult(sqlmock.NewResult(0, 6))
	// 3. re-arm job cho reservation còn ACTIVE
	mock.ExpectQuery(`SELECT (.+) FROM "reservations"`).
		WillReturnRows(sqlmock.NewRows(reservationColumns()).
			AddRow("abc123", 7, 1, "VIP", time.Now().Add(5*time.Minute), false, "ACTIVE"))
	mock.ExpectExec(`INSERT INTO "expiration_jobs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ReconcileOnStartup()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

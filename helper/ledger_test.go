package helper

import (
	"testing"

	"reservation_manager/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDecrementAvailable(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectExec(`UPDATE "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := DecrementAvailable(database.DB, 1, "VIP")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementAvailableSoldOut(t *testing.T) {
	mock := setupMockDB(t)

	// number_available = 0: guard trong WHERE chặn update, không có row nào bị đụng
	mock.ExpectExec(`UPDATE "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := DecrementAvailable(database.DB, 1, "VIP")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementAvailable(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectExec(`UPDATE "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := IncrementAvailable(database.DB, 1, "VIP")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementAvailableAtCapacity(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectExec(`UPDATE "tickets"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := IncrementAvailable(database.DB, 1, "VIP")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentAvailable(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "ticket_type", "number_available", "capacity"}).
			AddRow(1, 1, "VIP", 9, 10))

	available, err := CurrentAvailable(1, "VIP")
	assert.NoError(t, err)
	assert.Equal(t, 9, available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

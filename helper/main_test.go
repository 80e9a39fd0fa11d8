package helper

import (
	"testing"

	"reservation_manager/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB mock thay cho postgres thật, các câu UPDATE có guard vẫn kiểm tra được
// qua RowsAffected trả về từ sqlmock
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	database.DB = gdb
	t.Cleanup(func() {
		sqlDB.Close()
		database.DB = nil
	})
	return mock
}

func setupMockRedis(t *testing.T) redismock.ClientMock {
	t.Helper()

	client, mock := redismock.NewClientMock()
	old := RedisClient
	RedisClient = client
	t.Cleanup(func() { RedisClient = old })
	return mock
}

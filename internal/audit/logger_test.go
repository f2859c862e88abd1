package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barbearia-sys/barbearia-api/internal/models"
)

func setupAuditDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return db
}

func TestLoggerGravaEvento(t *testing.T) {
	db := setupAuditDB(t)
	l := New(db)

	userID := uint(3)
	entityID := uint(12)
	err := l.Log(&userID, "agendamento_created", "agendamento", &entityID, map[string]any{
		"cliente_id": 5,
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "agendamento_created", entry.Action)
	assert.Equal(t, "agendamento", entry.Entity)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(3), *entry.UserID)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, uint(12), *entry.EntityID)
	assert.JSONEq(t, `{"cliente_id": 5}`, entry.Metadata)
}

func TestLoggerSemUsuarioNemMetadata(t *testing.T) {
	db := setupAuditDB(t)
	l := New(db)

	require.NoError(t, l.Log(nil, "user_login_failed", "user", nil, nil))

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Nil(t, entry.UserID)
	assert.Nil(t, entry.EntityID)
	assert.Empty(t, entry.Metadata)
}

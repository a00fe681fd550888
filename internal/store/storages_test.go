package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
)

func TestNewStoragesFromDB_WiresEveryRepository(t *testing.T) {
	db, _ := newMockDB(t)

	s := newStoragesFromDB(db, logger.Nop())

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.SessionRepository)
	assert.NotNil(t, s.RateLimitRepository)
	assert.NotNil(t, s.TestRepository)
	assert.NotNil(t, s.RunRepository)
	assert.NotNil(t, s.CollectionRepository)
	assert.NotNil(t, s.BannedAccountRepository)

	require.NoError(t, s.Ping(context.Background()))
}

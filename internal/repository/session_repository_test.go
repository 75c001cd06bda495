package repository

import (
	"testing"

	"github.com/mirothedj/robocat/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_SaveAndGet(t *testing.T) {
	repo := NewMemorySessionRepository()
	session := domain.NewSession("01HGZ8VNRYXS8QKNJV5GRWPWDQ")

	require.NoError(t, repo.Save(session))
	assert.Equal(t, 1, repo.Count())

	got, err := repo.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestMemorySessionRepository_GetMissing(t *testing.T) {
	repo := NewMemorySessionRepository()

	_, err := repo.Get("missing")
	require.Error(t, err)
	derr, ok := err.(*domain.DomainError)
	require.True(t, ok)
	assert.Equal(t, domain.CodeSessionNotFound, derr.Code)
}

func TestMemorySessionRepository_Delete(t *testing.T) {
	repo := NewMemorySessionRepository()
	session := domain.NewSession("abc")
	require.NoError(t, repo.Save(session))

	require.NoError(t, repo.Delete("abc"))
	assert.Equal(t, 0, repo.Count())
	assert.Error(t, repo.Delete("abc"))
}

func TestMemorySessionRepository_RejectsEmptyID(t *testing.T) {
	repo := NewMemorySessionRepository()
	assert.Error(t, repo.Save(domain.NewSession("")))
	assert.Error(t, repo.Save(nil))
}

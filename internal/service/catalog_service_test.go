package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
)

type fakeCatalogRepo struct {
	entries  []domain.CatalogEntry
	getErr   error
	seedErr  error
	getCalls int
}

func (f *fakeCatalogRepo) GetAll(_ context.Context) ([]domain.CatalogEntry, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries, nil
}

func (f *fakeCatalogRepo) Seed(_ context.Context, entries []domain.CatalogEntry) error {
	if f.seedErr != nil {
		return f.seedErr
	}
	f.entries = entries
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestGetCatalogSeedsOnFirstUse(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := NewCatalogService(repo, testLogger())

	entries, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, program.BuiltinCatalog(), entries)
	assert.NotEmpty(t, repo.entries, "first load must seed storage")
}

func TestGetCatalogCachesAfterFirstLoad(t *testing.T) {
	repo := &fakeCatalogRepo{entries: []domain.CatalogEntry{{ID: "squat", Name: "Squat"}}}
	svc := NewCatalogService(repo, testLogger())

	first, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	second, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls, "second call must be served from cache")
}

func TestGetCatalogFallsBackToBuiltinsOnStorageError(t *testing.T) {
	repo := &fakeCatalogRepo{getErr: errors.New("connection refused")}
	svc := NewCatalogService(repo, testLogger())

	entries, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, program.BuiltinCatalog(), entries)

	// Failures are not cached; storage gets another chance next call.
	_, err = svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestGetCatalogSeedFailureStillServesBuiltins(t *testing.T) {
	repo := &fakeCatalogRepo{seedErr: errors.New("insert failed")}
	svc := NewCatalogService(repo, testLogger())

	entries, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, program.BuiltinCatalog(), entries)
}

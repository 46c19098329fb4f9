package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/repository"
)

// CatalogService serves the shared exercise catalog. The catalog rarely
// changes, so the first successful load is cached for the life of the
// process.
type CatalogService interface {
	GetCatalog(ctx context.Context) ([]domain.CatalogEntry, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *logrus.Logger

	mu     sync.Mutex
	cached []domain.CatalogEntry
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *logrus.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog returns the exercise catalog, seeding storage from the built-in
// entries on first use. Storage failures fall back to the built-in catalog so
// the template editor keeps working.
func (s *catalogService) GetCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	entries, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("catalog load failed, serving built-in entries")
		return program.BuiltinCatalog(), nil
	}

	// A nil result means the collection was never seeded, as opposed to a
	// deliberately emptied catalog.
	if entries == nil {
		entries = program.BuiltinCatalog()
		if err := s.catalogRepo.Seed(ctx, entries); err != nil {
			s.logger.WithError(err).Warn("catalog seeding failed, serving built-in entries uncached")
			return entries, nil
		}
		s.logger.WithField("entries", len(entries)).Info("seeded exercise catalog")
	}

	s.cached = entries
	return s.cached, nil
}

// Package search orchestrates photo searches: upstream client plus the
// optional response cache.
package search

import (
	"context"

	"github.com/rohanthewiz/logger"

	"photosearch/pexels"
	"photosearch/store"
)

// Service is what the web handlers depend on. The upstream client satisfies
// it too, which lets CachedService wrap any Service and lets tests substitute
// a mock at either level.
type Service interface {
	Search(ctx context.Context, query string, page, perPage int) (*pexels.SearchResult, error)
}

// CachedService fetches through the cache when one is configured.
// A nil store means straight pass-through to the upstream client.
type CachedService struct {
	client Service
	cache  *store.Store
}

func NewService(client Service, cache *store.Store) *CachedService {
	return &CachedService{client: client, cache: cache}
}

// Search returns cached results when fresh, otherwise fetches upstream and
// caches the result. Upstream errors are never cached.
func (s *CachedService) Search(ctx context.Context, query string, page, perPage int) (*pexels.SearchResult, error) {
	var key string
	if s.cache != nil {
		key = store.Key(query, page, perPage)
		if result, ok := s.cache.Get(key); ok {
			logger.Debug("search cache hit", "query", query, "page", page)
			return result, nil
		}
	}

	result, err := s.client.Search(ctx, query, page, perPage)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(key, result)
	}
	return result, nil
}

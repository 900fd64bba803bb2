// Package store caches decoded search results in DuckDB so repeated queries
// within the TTL window don't spend upstream API quota.
package store

import (
	"bytes"
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"

	"photosearch/pexels"
)

const createCacheTable = `
	CREATE TABLE IF NOT EXISTS search_cache (
		qhash VARCHAR PRIMARY KEY,
		payload BLOB NOT NULL,
		expiry BIGINT NOT NULL
	)`

const purgeInterval = time.Hour

// Store is a TTL cache for search results.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens (creating if needed) the cache database at path and starts the
// background purge worker. The worker stops when ctx is canceled.
func Open(ctx context.Context, path string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open cache database", "path", path)
	}

	if _, err = db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, serr.Wrap(err, "failed to create cache table")
	}

	st := &Store{db: db, ttl: ttl}
	go st.purgeExpired(ctx)
	return st, nil
}

// Close closes the underlying database.
func (st *Store) Close() error {
	return st.db.Close()
}

// Key derives the cache key for a search. Queries differing only in case or
// surrounding whitespace share an entry.
func Key(query string, page, perPage int) string {
	normalized := strings.ToLower(strings.TrimSpace(query)) +
		"|" + strconv.Itoa(page) + "|" + strconv.Itoa(perPage)
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached result for key, or ok=false on a miss.
// Expired rows and undecodable payloads are both misses - a broken cache
// entry must never fail a search.
func (st *Store) Get(key string) (result *pexels.SearchResult, ok bool) {
	row := st.db.QueryRow(
		"SELECT payload FROM search_cache WHERE qhash = ? AND expiry > ?",
		key, time.Now().Unix())

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err != sql.ErrNoRows {
			logger.LogErr(serr.Wrap(err, "cache read failed"), "treating as cache miss", "key", key)
		}
		return nil, false
	}

	result, err := decodePayload(payload)
	if err != nil {
		logger.LogErr(err, "corrupt cache payload, treating as miss", "key", key)
		return nil, false
	}
	return result, true
}

// Put stores a result under key. Failures are logged, not returned - caching
// is best effort.
func (st *Store) Put(key string, result *pexels.SearchResult) {
	payload, err := encodePayload(result)
	if err != nil {
		logger.LogErr(err, "failed to encode cache payload", "key", key)
		return
	}

	expiry := time.Now().Add(st.ttl).Unix()
	_, err = st.db.Exec(
		"INSERT OR REPLACE INTO search_cache (qhash, payload, expiry) VALUES (?, ?, ?)",
		key, payload, expiry)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "cache write failed"), "skipping cache store", "key", key)
	}
}

// DeleteBefore removes entries whose expiry is before the given unix time.
func (st *Store) DeleteBefore(expiry int64) error {
	_, err := st.db.Exec("DELETE FROM search_cache WHERE expiry < ?", expiry)
	if err != nil {
		return serr.Wrap(err, "cache purge failed")
	}
	return nil
}

func (st *Store) purgeExpired(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := st.DeleteBefore(time.Now().Unix()); err != nil {
				logger.LogErr(err, "expired cache purge failed")
			}
		}
	}
}

// encodePayload packs a result as msgpack and brotli-compresses it.
// Photo alt texts repeat a lot of common words, so compression pays for
// itself even on small result sets.
func encodePayload(result *pexels.SearchResult) ([]byte, error) {
	packed, err := msgpack.Marshal(result)
	if err != nil {
		return nil, serr.Wrap(err, "msgpack encode failed")
	}

	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err = bw.Write(packed); err != nil {
		return nil, serr.Wrap(err, "brotli compress failed")
	}
	if err = bw.Close(); err != nil {
		return nil, serr.Wrap(err, "brotli close failed")
	}
	return buf.Bytes(), nil
}

func decodePayload(payload []byte) (*pexels.SearchResult, error) {
	packed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(payload)))
	if err != nil {
		return nil, serr.Wrap(err, "brotli decompress failed")
	}

	result := &pexels.SearchResult{}
	if err = msgpack.Unmarshal(packed, result); err != nil {
		return nil, serr.Wrap(err, "msgpack decode failed")
	}
	return result, nil
}

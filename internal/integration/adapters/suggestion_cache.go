// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gift-tracker/backend/internal/application/adapter"
)

// suggestionCache implements the adapter.SuggestionCache interface backed by
// Redis. Identical brainstorm requests map to the same key so repeated calls
// skip the paid API.
type suggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSuggestionCache creates a new Redis-backed suggestion cache.
func NewSuggestionCache(client *redis.Client, ttl time.Duration) adapter.SuggestionCache {
	return &suggestionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached result for the request, or nil on a miss.
func (c *suggestionCache) Get(ctx context.Context, request *adapter.BrainstormRequest) (*adapter.BrainstormResult, error) {
	payload, err := c.client.Get(ctx, cacheKey(request)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read suggestion cache: %w", err)
	}

	var result adapter.BrainstormResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached suggestions: %w", err)
	}
	return &result, nil
}

// Set stores the result for the request.
func (c *suggestionCache) Set(ctx context.Context, request *adapter.BrainstormRequest, result *adapter.BrainstormResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode suggestions: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(request), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write suggestion cache: %w", err)
	}
	return nil
}

// cacheKey derives a stable key from the request. Context entries are sorted
// so map iteration order does not produce distinct keys.
func cacheKey(request *adapter.BrainstormRequest) string {
	keys := make([]string, 0, len(request.Context))
	for key := range request.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%d", request.Scenario, request.GifteeName, request.NumIdeas)
	for _, key := range keys {
		fmt.Fprintf(&sb, "|%s=%s", key, request.Context[key])
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return "suggestions:" + hex.EncodeToString(sum[:])
}

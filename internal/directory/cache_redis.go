// Copyright (c) 2026 Worklane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/worklane/internal/platform/constants"
	"github.com/taibuivan/worklane/pkg/pagination"
)

// cachedPage is the serialized form of one listing page.
type cachedPage struct {
	Employees []Employee `json:"employees"`
	Total     int        `json:"total"`
}

// RedisEmployeeCache caches rendered directory pages in Redis.
//
// A cache miss is reported as (nil, 0, false, nil): the caller falls
// through to Postgres. Redis failures are also reported, so the service
// can degrade to uncached reads when the cache is down.
type RedisEmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisEmployeeCache returns a cache with the given page TTL.
func NewRedisEmployeeCache(client *redis.Client, ttl time.Duration) *RedisEmployeeCache {
	return &RedisEmployeeCache{client: client, ttl: ttl}
}

// GetPage returns a cached page, or found=false on a miss.
func (cache *RedisEmployeeCache) GetPage(context context.Context, params pagination.Params) ([]Employee, int, bool, error) {
	raw, err := cache.client.Get(context, pageKey(params)).Bytes()
	if err == redis.Nil {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("redis_employee_cache_get_failed: %w", err)
	}

	var page cachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return nil, 0, false, nil
	}

	return page.Employees, page.Total, true, nil
}

// SetPage stores one listing page under the page TTL.
func (cache *RedisEmployeeCache) SetPage(context context.Context, params pagination.Params, employees []Employee, total int) error {
	raw, err := json.Marshal(cachedPage{Employees: employees, Total: total})
	if err != nil {
		return fmt.Errorf("redis_employee_cache_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, pageKey(params), raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_employee_cache_set_failed: %w", err)
	}

	return nil
}

// Invalidate removes every cached page. Called after each write so stale
// pages never outlive a roster change by more than one round-trip.
func (cache *RedisEmployeeCache) Invalidate(context context.Context) error {
	iter := cache.client.Scan(context, 0, constants.RedisPrefixEmployeePage+"*", 100).Iterator()
	for iter.Next(context) {
		if err := cache.client.Del(context, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis_employee_cache_del_failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis_employee_cache_scan_failed: %w", err)
	}

	return nil
}

// pageKey renders the cache key for one (page, limit) combination.
func pageKey(params pagination.Params) string {
	return fmt.Sprintf("%s%d:%d", constants.RedisPrefixEmployeePage, params.Page, params.Limit)
}

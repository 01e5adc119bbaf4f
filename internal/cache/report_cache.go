package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"insightdeck/internal/model"
)

// ReportCache memoizes computed insight reports in Redis. Entries are
// keyed by survey id plus a content hash of the dataset, so a report is
// only ever returned for the exact dataset it was computed from; a new
// response changes the hash and misses the cache.
type ReportCache interface {
	Get(ctx context.Context, surveyID, datasetHash string) (*model.InsightsReport, error)
	Set(ctx context.Context, surveyID, datasetHash string, report *model.InsightsReport) error
	Invalidate(ctx context.Context, surveyID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    6 * time.Hour,
	}
}

func (c *reportCache) reportKey(surveyID, datasetHash string) string {
	return fmt.Sprintf("survey:%s:insights:%s", surveyID, datasetHash)
}

func (c *reportCache) indexKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:insights:latest", surveyID)
}

func (c *reportCache) Get(ctx context.Context, surveyID, datasetHash string) (*model.InsightsReport, error) {
	data, err := c.client.Get(ctx, c.reportKey(surveyID, datasetHash)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.InsightsReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) Set(ctx context.Context, surveyID, datasetHash string, report *model.InsightsReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	key := c.reportKey(surveyID, datasetHash)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return err
	}
	// Track the newest entry so Invalidate can drop it without a scan.
	return c.client.Set(ctx, c.indexKey(surveyID), key, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, surveyID string) error {
	key, err := c.client.Get(ctx, c.indexKey(surveyID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	return c.client.Del(ctx, key, c.indexKey(surveyID)).Err()
}

package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	QueueAlerts = "jobs:alerts"

	JobLowStock = "low_stock"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Queue enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Queue struct {
	rdb *redis.Client
}

func NewQueue(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb}
}

// EnqueueLowStock pushes a low-stock alert job to Redis.
func (q *Queue) EnqueueLowStock(ctx context.Context, payload LowStockPayload) error {
	return q.enqueue(ctx, QueueAlerts, JobLowStock, payload)
}

func (q *Queue) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, queue, encoded).Err()
}

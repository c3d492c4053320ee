package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

// AsynqDispatcher schedules simulated posts on Redis through asynq.
type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(redisConn asynq.RedisConnOpt) *AsynqDispatcher {
	return &AsynqDispatcher{
		client: asynq.NewClient(redisConn),
	}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, payload transfer.PostTask, delay time.Duration) (string, error) {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	taskID := uuid.NewString()
	task := asynq.NewTask(TaskTypeSimulatePost, taskPayload)

	_, err = d.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.TaskID(taskID), asynq.MaxRetry(0))
	if err != nil {
		return "", err
	}

	log.Printf("Task scheduled: %s for workspace %s", taskID, payload.WorkspaceID)
	return taskID, nil
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

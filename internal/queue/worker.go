package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/crosspost/internal/transfer"
)

func (q *Queue) HandleSimulatePostTask(ctx context.Context, task *asynq.Task) error {
	var payload transfer.PostTask
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid %s payload: %v: %w", TaskTypeSimulatePost, err, asynq.SkipRetry)
	}

	return q.PublishPost(ctx, payload)
}

// PublishPost completes a simulated post once its delay has passed.
func (q *Queue) PublishPost(ctx context.Context, payload transfer.PostTask) error {
	record, err := q.ps.Complete(ctx, payload)
	if err != nil {
		log.Printf("Error recording post for workspace %s: %v", payload.WorkspaceID, err)
		return err
	}

	log.Printf("Post #%s recorded for %v", record.ShortID(), record.Platforms)
	return nil
}

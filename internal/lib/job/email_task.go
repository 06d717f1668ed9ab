package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the job type name stored in Redis. Asynq routes
	// tasks to handlers by this string.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload for the welcome email task.
type WelcomeEmailPayload struct {
	UserID string `json:"user_id"`
	To     string `json:"to"`
	Name   string `json:"name"`
}

// NewWelcomeEmailTask constructs the Asynq task for a welcome email:
// up to three retries on the default queue, killed after 30 seconds.
func NewWelcomeEmailTask(userID uuid.UUID, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		UserID: userID.String(),
		To:     to,
		Name:   name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcomeEmail pushes the welcome email job for a new user.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, userID uuid.UUID, to, name string) error {
	task, err := NewWelcomeEmailTask(userID, to, name)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Info().
		Str("task_id", info.ID).
		Str("user_id", userID.String()).
		Msg("Enqueued welcome email")

	return nil
}

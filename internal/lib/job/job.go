// Package job provides background work: Redis-backed tasks processed
// through Asynq, plus the in-process cron scheduler that sweeps
// scheduled posts.
package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/config"
)

// publishSweepTimeout bounds a single scheduler sweep so a stuck
// database call cannot pile up overlapping runs.
const publishSweepTimeout = 30 * time.Second

// PostPublisher promotes due drafts to published. The posts service
// implements it; keeping the interface here avoids importing the
// service layer from this package.
type PostPublisher interface {
	PublishDuePosts(ctx context.Context) (int64, error)
}

// JobService holds the Asynq client (enqueue), the Asynq server (worker
// execution) and the cron scheduler.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server    *asynq.Server
	scheduler *cron.Cron
	logger    *zerolog.Logger
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights split the worker pool roughly 6/3/1 across the
// critical, default and low queues so transactional mail keeps moving
// when bulk work piles up.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server. Asynq's
// Start spawns its processing goroutines and returns.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("Starting background job server")

	return j.server.Start(mux)
}

// StartScheduler begins the minutely sweep that publishes due posts.
// It is separate from Start because the publisher only exists once the
// services are wired, which happens after the job server boots.
func (j *JobService) StartScheduler(publisher PostPublisher) error {
	j.scheduler = cron.New()

	_, err := j.scheduler.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishSweepTimeout)
		defer cancel()

		if _, err := publisher.PublishDuePosts(ctx); err != nil {
			j.logger.Error().Err(err).Msg("Scheduled post publish sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.logger.Info().Msg("Starting post publish scheduler")
	j.scheduler.Start()

	return nil
}

// Stop gracefully stops the scheduler and the job server, then closes
// the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")

	if j.scheduler != nil {
		j.scheduler.Stop()
	}
	j.server.Shutdown()
	j.Client.Close()
}

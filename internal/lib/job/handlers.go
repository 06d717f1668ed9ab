package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/config"
	"github.com/tradepost/backend/internal/lib/email"
	"github.com/tradepost/backend/internal/validation"
)

// emailClient is package state shared by the task handlers. InitHandlers
// must run before Start so a task never races a nil client.
var emailClient *email.Client

// InitHandlers wires the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(cfg, logger)
}

// handleWelcomeEmailTask processes one welcome email task. Malformed
// payloads are not retryable; retrying cannot fix bad JSON or a bogus
// user id, so those wrap asynq.SkipRetry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}
	if !validation.IsValidUUID(p.UserID) {
		return fmt.Errorf("welcome email payload has invalid user id %q: %w", p.UserID, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskWelcome).
		Str("user_id", p.UserID).
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", TaskWelcome).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", TaskWelcome).
		Str("to", p.To).
		Msg("Sent welcome email")

	return nil
}

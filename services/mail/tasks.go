package mail

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeSendEmail is the asynq task type for queued email delivery.
const TypeSendEmail = "email:send"

// EmailPayload is the serialized body of a queued email task.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewEmailTask wraps an email payload into an asynq task. Delivery is
// best-effort: a failed send is logged and dropped, never retried.
func NewEmailTask(p EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendEmail, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}

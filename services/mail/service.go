package mail

import (
	"growlife/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Service is the single entry point the rest of the application uses for
// outgoing email. Send blocks on delivery and reports failure; Enqueue is
// fire-and-forget and detaches delivery from the request path.
type Service struct {
	Sender Sender
	Client *asynq.Client
}

// NewService wires a sender and an optional asynq client. A nil client
// degrades Enqueue to a background goroutine, which keeps the detached
// semantics without a queue.
func NewService(sender Sender, client *asynq.Client) *Service {
	return &Service{Sender: sender, Client: client}
}

// Send delivers the message synchronously. Only the OTP flow uses this path,
// where a transport failure must surface to the caller.
func (s *Service) Send(to, subject, html string) error {
	return s.Sender.Send(to, subject, html)
}

// Enqueue schedules delivery and returns immediately. Failures are logged,
// never surfaced to the triggering request.
func (s *Service) Enqueue(to, subject, html string) {
	logger := utils.GetLogger()

	if s.Client == nil {
		go func() {
			if err := s.Sender.Send(to, subject, html); err != nil {
				logger.Error("Failed to send email", zap.String("to", to), zap.Error(err))
			}
		}()
		return
	}

	task, opts, err := NewEmailTask(EmailPayload{To: to, Subject: subject, HTML: html})
	if err != nil {
		logger.Error("Failed to build email task", zap.String("to", to), zap.Error(err))
		return
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		logger.Error("Failed to enqueue email task", zap.String("to", to), zap.Error(err))
	}
}

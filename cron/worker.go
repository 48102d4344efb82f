package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"growlife/config"
	"growlife/services/mail"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email dispatch worker in background.
func InitEmailWorker(sender mail.Sender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(mail.TypeSendEmail, handleEmailTask(sender))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(sender mail.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p mail.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		// Delivery is best-effort: log and drop, never fail the task into a
		// retry cycle.
		if err := sender.Send(p.To, p.Subject, p.HTML); err != nil {
			log.Printf("[EmailWorker] failed to send email to %s: %v", p.To, err)
		}
		return nil
	}
}

package cron

import (
	"context"
	"log"
	"time"

	"astrodesk/config"
	chatRepo "astrodesk/database/repository/chat"

	"github.com/hibiken/asynq"
)

const TypeChatRetention = "chat:retention"

// InitRetentionWorker runs the async retention worker in background. It prunes
// chat sessions idle beyond the configured retention window; bookings and
// queries are never touched.
func InitRetentionWorker(repo chatRepo.ChatRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRetentionDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeChatRetention, handleRetentionTask(repo))

	go func() {
		log.Println("[RetentionWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[RetentionWorker] worker stopped: %v", err)
		}
	}()

	go enqueueRetentionLoop(redisOpts)
}

// handleRetentionTask deletes sessions whose last activity predates the
// retention cutoff.
func handleRetentionTask(repo chatRepo.ChatRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		days := config.AppConfig.ChatRetentionDays
		if days <= 0 {
			days = 30
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -days)

		deleted, err := repo.DeleteIdleSince(cutoff)
		if err != nil {
			log.Printf("[RetentionWorker] sweep failed: %v", err)
			return err
		}
		if deleted > 0 {
			log.Printf("[RetentionWorker] pruned %d idle chat sessions", deleted)
		}
		return nil
	}
}

// enqueueRetentionLoop schedules one sweep at startup and then daily.
func enqueueRetentionLoop(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	enqueue := func() {
		task := asynq.NewTask(TypeChatRetention, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
			log.Printf("[RetentionWorker] failed to enqueue sweep: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		enqueue()
	}
}

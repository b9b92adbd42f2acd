package cron

import (
	"context"
	"log"
	"time"

	"nestulasli/config"
	"nestulasli/services/rates"

	"github.com/hibiken/asynq"
)

const TypeRatesRefresh = "rates:refresh"

// InitRatesWorker runs the async rate-refresh worker in background.
func InitRatesWorker(ratesSvc *rates.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeRatesRefresh, handleRatesRefresh(ratesSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[RatesWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RatesWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RatesWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go enqueueRefreshLoop(redisOpts)
}

func handleRatesRefresh(ratesSvc *rates.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		// Failures are tolerated: the service keeps the prior rate table
		// and the next scheduled refresh tries again.
		if err := ratesSvc.Refresh(ctx); err != nil {
			log.Printf("[RatesHandler] Refresh failed: %v", err)
		}
		return nil
	}
}

// enqueueRefreshLoop enqueues a refresh task immediately at startup and
// then on the configured interval.
func enqueueRefreshLoop(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.RateRefreshMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	enqueue := func() {
		task := asynq.NewTask(TypeRatesRefresh, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(0)); err != nil {
			log.Printf("[RatesWorker] Failed to enqueue refresh: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		enqueue()
	}
}

package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"chefly/config"
	"chefly/database/repository"
	"chefly/models"
	bookingSvc "chefly/services/booking"
	"chefly/services/tasks"
	"chefly/utils"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask surfaces the reminder. Delivery to a push channel is an
// integration concern; the worker records that the reminder fired.
func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] invalid payload: %v", err)
		return err
	}

	utils.GetLogger().Info("booking reminder fired",
		zap.String("bookingId", p.BookingID),
		zap.String("chefId", p.ChefID),
		zap.String("clientId", p.ClientID),
		zap.String("date", p.Date),
		zap.Int("start", p.Start))
	return nil
}

// InitEarningsRefresh schedules the nightly recomputation of every chef's
// earnings snapshot so the cached derived view stays warm.
func InitEarningsRefresh(chefRepo repository.ChefRepository, bookingService bookingSvc.BookingService) *cron.Cron {
	c := cron.New()
	spec := config.AppConfig.EarningsRefreshSpec
	if spec == "" {
		spec = "0 3 * * *"
	}

	_, err := c.AddFunc(spec, func() {
		logger := utils.GetLogger()
		chefs, err := chefRepo.GetAll()
		if err != nil {
			logger.Error("earnings refresh: failed to list chefs", zap.Error(err))
			return
		}
		for _, chef := range chefs {
			if _, err := bookingService.GetEarnings(chef.ID); err != nil {
				logger.Warn("earnings refresh failed for chef",
					zap.String("chefId", chef.ID), zap.Error(err))
			}
		}
		logger.Info("earnings snapshots refreshed", zap.Int("chefs", len(chefs)))
	})
	if err != nil {
		log.Fatalf("failed to schedule earnings refresh: %v", err)
	}

	c.Start()
	return c
}

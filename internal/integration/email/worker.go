package email

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/0Hoxy/fixedExpenses/internal/application/adapter"
)

// Worker periodically scans for subscriptions whose payment date is the
// configured number of days away and emails a reminder to the account owner.
type Worker struct {
	expenditureRepo adapter.ExpenditureRepository
	sender          adapter.EmailSender
	recipient       string
	pollInterval    time.Duration

	mu   sync.Mutex
	sent map[string]struct{} // dedupe key: expenditureID + due date
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	Recipient    string
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 1 * time.Hour,
	}
}

// NewWorker creates a new reminder worker.
func NewWorker(expenditureRepo adapter.ExpenditureRepository, sender adapter.EmailSender, config WorkerConfig) *Worker {
	return &Worker{
		expenditureRepo: expenditureRepo,
		sender:          sender,
		recipient:       config.Recipient,
		pollInterval:    config.PollInterval,
		sent:            make(map[string]struct{}),
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processReminders(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

// processReminders finds due subscriptions and sends one reminder each.
func (w *Worker) processReminders(ctx context.Context) {
	if w.recipient == "" {
		return
	}

	reminders, err := w.expenditureRepo.FindSubscriptionsDueForReminder(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("Failed to find due subscriptions", "error", err)
		return
	}

	for _, reminder := range reminders {
		select {
		case <-ctx.Done():
			return
		default:
		}

		key := reminder.Expenditure.ID.String() + ":" + reminder.DueDate.Format("2006-01-02")
		w.mu.Lock()
		_, alreadySent := w.sent[key]
		if !alreadySent {
			w.sent[key] = struct{}{}
		}
		w.mu.Unlock()
		if alreadySent {
			continue
		}

		w.sendReminder(ctx, reminder)
	}
}

func (w *Worker) sendReminder(ctx context.Context, reminder *adapter.SubscriptionReminder) {
	logger := slog.With(
		"expenditure_id", reminder.Expenditure.ID,
		"due_date", reminder.DueDate.Format("2006-01-02"),
	)

	subject := fmt.Sprintf("[%s] 결제 예정 알림", reminder.Expenditure.ItemName)
	body := fmt.Sprintf(
		"%s님, %s 구독 요금 %s원이 %s에 결제될 예정입니다.",
		reminder.Profile.Name,
		reminder.Expenditure.ItemName,
		reminder.Detail.Amount.String(),
		reminder.DueDate.Format("2006-01-02"),
	)

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      w.recipient,
		Name:    reminder.Profile.Name,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		logger.Error("Failed to send reminder email", "error", err)
		// Allow a retry on the next pass.
		w.mu.Lock()
		delete(w.sent, reminder.Expenditure.ID.String()+":"+reminder.DueDate.Format("2006-01-02"))
		w.mu.Unlock()
		return
	}

	logger.Info("Reminder email sent", "resend_id", result.ResendID)
}

// ProcessNow runs one reminder pass immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processReminders(ctx)
}

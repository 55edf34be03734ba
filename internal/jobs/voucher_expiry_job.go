package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatchops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VoucherExpiryJob deactivates vouchers whose validity window has elapsed.
// Runs every minute; the sweep itself is idempotent, so a missed or
// doubled run is harmless.
type VoucherExpiryJob struct {
	handler commands.ExpireVouchersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVoucherExpiryJob creates the scheduled voucher sweep.
func NewVoucherExpiryJob(handler commands.ExpireVouchersCommandHandler, logger *slog.Logger) *VoucherExpiryJob {
	return &VoucherExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "voucher_expiry_job"),
	}
}

// Start begins the sweep on a once-a-minute schedule.
func (j *VoucherExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireVouchersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Voucher expiry job could not build command", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Voucher expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Voucher expiry sweep deactivated vouchers", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Voucher expiry job started (running every minute)")
	return nil
}

// Stop stops the voucher expiry job.
func (j *VoucherExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Voucher expiry job stopped")
}

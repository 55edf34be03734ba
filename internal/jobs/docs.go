// Package jobs provides scheduled background tasks for the order ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the ledger needs.
//
// # Available Jobs
//
// 1. VoucherExpiryJob - Runs every minute to deactivate vouchers whose
// 48-hour validity window has elapsed, writing one audit entry per voucher.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireVouchersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry sweep is idempotent: every run looks only at vouchers still
// active and past expiry, so failures are logged and simply retried on
// the next tick.
package jobs

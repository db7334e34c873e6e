// Package jobs provides scheduled background tasks for the pricing service.
//
// Jobs use github.com/robfig/cron/v3 with second-resolution schedules.
//
// # Available Jobs
//
// QuoteExpiryJob - by default runs every minute and moves Open quotes past
// their deadline to Expired.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&expireQuotesHandler, cfg.QuoteExpirySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. Quotes that expire
// between ticks can still be refused at booking time, since Quote.Book checks
// the deadline itself.
package jobs

package jobs

import (
	"context"
	"time"

	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/logger"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	leadService *leads.Service
	metrics     *metrics.Metrics
	logger      logger.Logger
	cronSpec    string
}

// NewCronManager creates a new cron manager
func NewCronManager(leadService *leads.Service, m *metrics.Metrics, cronSpec string, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	if cronSpec == "" {
		cronSpec = "0 8 * * *"
	}

	return &CronManager{
		cron:        cron.New(),
		leadService: leadService,
		metrics:     m,
		logger:      log,
		cronSpec:    cronSpec,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Info("Setting up cron jobs...")

	// Daily follow-up scan: surface leads whose follow-up date has
	// passed so the team starts the day with a worklist.
	_, err := cm.cron.AddFunc(cm.cronSpec, func() {
		cm.logger.Info("🕐 Running follow-up scan...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		due, err := cm.leadService.DueFollowUps(ctx, time.Now())
		if err != nil {
			cm.logger.Error("❌ Follow-up scan failed", "error", err)
			return
		}

		if cm.metrics != nil {
			cm.metrics.RecordFollowUpScan()
		}

		if len(due) == 0 {
			cm.logger.Info("✅ No follow-ups due")
			return
		}

		for _, l := range due {
			cm.logger.Info("📞 Follow-up due",
				"lead_id", l.ID,
				"name", l.Name,
				"scheduled", l.NextFollowUp.Format("2006-01-02"),
				"status", l.Status)
		}
		cm.logger.Info("✅ Follow-up scan completed", "due", len(due))
	})
	if err != nil {
		return err
	}

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Info("✅ Cron jobs started")
}

// Stop stops the cron scheduler and waits for running jobs
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Info("Cron jobs stopped")
}

package config

import (
	"storefront.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"cartjanitor":   {Schedule: "@every 10m", Job: jobs.CartJanitorJob},
	"cachesnapshot": {Schedule: "@every 15m", Job: jobs.CacheSnapshotJob},
	// Add more jobs here
}

package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"storefront.GO/config"
)

// StartCron schedules the built-in jobs from config.CronJobs plus every
// job added through Register, then starts the scheduler. Reading the
// registry locks it, so all registration must happen during init.
func StartCron() *cron.Cron {
	c := cron.New()
	schedule := func(name, spec string, run func(...string)) {
		if _, err := c.AddFunc(spec, func() { run() }); err != nil {
			log.Fatalf("cron: cannot schedule %s (%q): %v", name, spec, err)
		}
	}
	for name, job := range config.CronJobs {
		schedule(name, job.Schedule, job.Job)
	}
	for name, job := range Jobs() {
		schedule(name, job.Schedule, job.Run)
	}
	c.Start()
	return c
}

package cron

import (
	"sync"

	"storefront.GO/core/registry"
)

// Job pairs a cron schedule expression with the function to run.
type Job struct {
	Schedule string
	Run      func(...string)
}

var jobsMu sync.Mutex

func storedJobs() map[string]Job {
	v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron)
	if !ok || v == nil {
		return map[string]Job{}
	}
	return v.(map[string]Job)
}

// Register adds a job under a unique name. Meant to be called from init()
// in custom packages; once StartCron has read the registry it is locked
// and further registration panics, as does reusing a name.
func Register(name string, schedule string, run func(...string)) {
	jobsMu.Lock()
	defer jobsMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked after StartCron, register from init()")
	}
	jobs := storedJobs()
	if _, exists := jobs[name]; exists {
		panic("cron/registry: job name already taken: " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job by name, unlocking the registry first so tests
// can clean up after themselves.
func Unregister(name string) {
	jobsMu.Lock()
	defer jobsMu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := storedJobs()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Jobs returns a copy of every registered job, merged by the scheduler
// with config.CronJobs. The first call locks the registry; the job set is
// immutable from then on.
func Jobs() map[string]Job {
	jobsMu.Lock()
	defer jobsMu.Unlock()
	jobs := storedJobs()
	out := make(map[string]Job, len(jobs))
	for name, job := range jobs {
		out[name] = job
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}

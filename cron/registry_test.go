package cron

import (
	"testing"
)

func TestRegister_JobVisibleAndRunnable(t *testing.T) {
	pruned := false
	Register("sessionsweep", "@every 30m", func(args ...string) {
		pruned = true
	})
	defer Unregister("sessionsweep")

	job, ok := Jobs()["sessionsweep"]
	if !ok {
		t.Fatal("sessionsweep missing from Jobs()")
	}
	if job.Schedule != "@every 30m" {
		t.Errorf("Schedule = %q, want @every 30m", job.Schedule)
	}
	job.Run()
	if !pruned {
		t.Error("registered job function never ran")
	}
}

func TestRegister_DuplicateNamePanics(t *testing.T) {
	Register("snapshotjob", "@hourly", func(...string) {})
	defer Unregister("snapshotjob")
	defer func() {
		if recover() == nil {
			t.Error("want panic when a job name is registered twice")
		}
	}()
	Register("snapshotjob", "@daily", func(...string) {})
}

func TestRegister_AfterLockPanics(t *testing.T) {
	Jobs() // locks the registry
	defer Unregister("latejob")
	defer func() {
		if recover() == nil {
			t.Error("want panic when registering after the scheduler locked the registry")
		}
	}()
	Register("latejob", "@hourly", func(...string) {})
}

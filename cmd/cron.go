package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/cron"
)

var cronJobName string

// runNamedJob runs one job from either the config map or the registry
// and reports whether the name was known.
func runNamedJob(name string, args []string) bool {
	name = strings.ToLower(name)
	if job, ok := config.CronJobs[name]; ok {
		job.Job(args...)
		return true
	}
	if job, ok := cron.Jobs()[name]; ok {
		job.Run(args...)
		return true
	}
	return false
}

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler, or run one job by name with --job",
	Run: func(cmd *cobra.Command, args []string) {
		if cronJobName != "" {
			fmt.Printf("Running cron job: %s\n", cronJobName)
			if !runNamedJob(cronJobName, args) {
				fmt.Printf("Unknown job: %s\n", cronJobName)
				os.Exit(1)
			}
			return
		}
		scheduler := cron.StartCron()
		defer scheduler.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		select {}
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&cronJobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}

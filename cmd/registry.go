package cmd

import (
	"github.com/spf13/cobra"

	"storefront.GO/core/registry"
)

func pendingCommands() []*cobra.Command {
	v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd)
	if !ok || v == nil {
		return nil
	}
	return v.([]*cobra.Command)
}

// Register queues a cobra command to be attached to the storefront root
// command. Call from init() in custom packages; once Execute has applied
// the queue the registry is locked and late registration panics.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked after Execute, register from init()")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(pendingCommands(), c))
}

// Apply attaches every queued command to the root command and locks the
// registry.
func Apply() {
	for _, c := range pendingCommands() {
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}

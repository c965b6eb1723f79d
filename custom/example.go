// Package custom shows how a deployment extends the storefront without
// touching core packages: register routes, commands, cron jobs, and
// GraphQL extensions from init() and import the package for side effects.
package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"storefront.GO/api"
	"storefront.GO/cmd"
	"storefront.GO/cron"
	gqlregistry "storefront.GO/graphql/registry"
	"storefront.GO/service/cart"
)

func init() {
	// GraphQL extension: query { extension(name: "cartCount") }
	gqlregistry.Register("cartCount", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]int{"sessions": cart.Sessions().Len()}, nil
	})

	// CLI command: storefront custom:sessions
	cmd.Register(&cobra.Command{
		Use:   "custom:sessions",
		Short: "Print the number of live cart sessions",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "%d cart session(s)\n", cart.Sessions().Len())
		},
	})

	// Cron job: log a heartbeat with the live session count.
	cron.Register("sessioncount", "@every 5m", func(args ...string) {
		fmt.Printf("sessions: %d\n", cart.Sessions().Len())
	})

	// HTTP route: liveness ping outside the /api group.
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}

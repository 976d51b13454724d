// Command apiprobe revisa que un backend responda: raíz, docs, registro y el
// listado de rutas del OpenAPI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pet-companion/internal/platform/httpclient"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "apiprobe",
	Short:        "Probe API connectivity",
	Long:         `apiprobe hits /, /docs, POST /auth/register and /openapi.json on a base URL and prints what it finds.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := httpclient.NewWithBaseURL(baseURL, timeout)
		if err != nil {
			return err
		}
		return runProbe(cmd.Context(), c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8000", "API base URL")
	rootCmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "per-request timeout")
}

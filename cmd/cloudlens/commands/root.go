package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudlens/cloudlens/arch"
	"github.com/cloudlens/cloudlens/report"
)

var rootCmd = &cobra.Command{
	Use:   "cloudlens",
	Short: "cloudlens renders a reference cloud architecture diagram",
	Long: `cloudlens renders a fixed cloud architecture topology (users, CDN,
load balancer, web servers, API gateway, app server, database, cache,
file storage) as a static PNG diagram and an interactive HTML report,
then opens the report in the default browser.

Run with no arguments to generate both outputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRender,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeFailure(err))
		os.Exit(1)
	}
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// describeFailure maps the pipeline's named error kinds onto
// one-line user-facing messages.
func describeFailure(err error) string {
	var verr *arch.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Error: configuration: %v", verr)
	}
	var rerr *report.RenderError
	if errors.As(err, &rerr) {
		return fmt.Sprintf("Error: rendering failed: %v", rerr)
	}
	var werr *report.WriteError
	if errors.As(err, &werr) {
		return fmt.Sprintf("Error: could not write output: %v", werr)
	}
	return fmt.Sprintf("Error: %v", err)
}

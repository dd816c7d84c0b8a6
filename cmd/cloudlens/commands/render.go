package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudlens/cloudlens/arch"
	"github.com/cloudlens/cloudlens/report"
)

var (
	renderOutDir  string
	renderTempDir string
	renderNoOpen  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the static PNG and the interactive HTML report",
	Long: `Renders both views of the architecture: the static diagram is
written under the temp directory, the interactive report under the
output directory (created if missing), which is then opened in the
default browser unless --no-open is given.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	g := &report.Generator{
		Topology: arch.Default(),
		OutDir:   outDir(),
		TempDir:  tempDir(),
	}
	if renderNoOpen {
		g.Open = func(string) error { return nil }
	}
	return g.Run()
}

// Flags take precedence over environment, environment over defaults
// (the env vars are typically supplied via a .env file).
func outDir() string {
	if renderOutDir != "" {
		return renderOutDir
	}
	if dir := os.Getenv("CLOUDLENS_OUT_DIR"); dir != "" {
		return dir
	}
	return "docs"
}

func tempDir() string {
	if renderTempDir != "" {
		return renderTempDir
	}
	if dir := os.Getenv("CLOUDLENS_TMP_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}

func init() {
	for _, cmd := range []*cobra.Command{renderCmd, rootCmd} {
		cmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "Report output directory (default: CLOUDLENS_OUT_DIR or ./docs)")
		cmd.Flags().StringVar(&renderTempDir, "tmp", "", "Static image directory (default: CLOUDLENS_TMP_DIR or the system temp dir)")
		cmd.Flags().BoolVar(&renderNoOpen, "no-open", false, "Do not open the report in a browser")
	}
	AddCommand(renderCmd)
}

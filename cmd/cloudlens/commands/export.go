package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudlens/cloudlens/arch"
	"github.com/cloudlens/cloudlens/viz"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the static diagram as dot, mermaid or png",
	Long: `Exports the architecture diagram in a single format without
building the HTML report. Text formats (dot, mermaid) print to stdout
unless --output is given; png requires --output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topo := arch.Default()
		switch format := args[0]; format {
		case "dot", "mermaid":
			var gen viz.TextDiagramGenerator = &viz.DotGenerator{}
			if format == "mermaid" {
				gen = &viz.MermaidGenerator{}
			}
			out, err := gen.Generate(topo)
			if err != nil {
				return err
			}
			return writeOutput(exportOutput, []byte(out))
		case "png":
			if exportOutput == "" {
				return fmt.Errorf("png export requires --output")
			}
			png, err := viz.NewRasterGenerator(viz.DefaultRasterConfig()).Generate(topo)
			if err != nil {
				return err
			}
			return writeOutput(exportOutput, png)
		default:
			return fmt.Errorf("unknown format %q: choose dot, mermaid or png", format)
		}
	},
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Diagram written to %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "O", "", "Write to file instead of stdout")
	AddCommand(exportCmd)
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cloudlens/cloudlens/arch"
)

var topologyFormat string

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Print the component/connection model",
	Long: `Prints the fixed topology consumed by every render backend, as
yaml (default) or json. Useful for inspecting exactly what the
diagrams are drawn from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topo := arch.Default()
		if err := topo.Validate(); err != nil {
			return err
		}
		switch topologyFormat {
		case "yaml":
			out, err := yaml.Marshal(topo)
			if err != nil {
				return fmt.Errorf("marshal topology: %w", err)
			}
			_, err = os.Stdout.Write(out)
			return err
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(topo)
		default:
			return fmt.Errorf("unknown format %q: choose yaml or json", topologyFormat)
		}
	},
}

func init() {
	topologyCmd.Flags().StringVar(&topologyFormat, "format", "yaml", "Output format: yaml or json")
	AddCommand(topologyCmd)
}

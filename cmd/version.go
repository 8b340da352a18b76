package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

type buildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// currentBuild reports the ldflags version, falling back to the module
// version stamped by `go install` when no ldflags were given.
func currentBuild() buildInfo {
	v := version
	if v == "(devel)" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			v = info.Main.Version
		}
	}
	return buildInfo{
		Version:   v,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := currentBuild()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "text":
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "growthfit %s (%s, %s)\n", b.Version, b.GoVersion, b.Platform)
			return err
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(b)
		default:
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "text", "Output format: text or json")
}

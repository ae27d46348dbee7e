package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"indentect.dev/pkg/indentect/internal/domain"
	m "indentect.dev/pkg/indentect/internal/model"
)

var detectParallelFlag int
var detectSkipDocFlag bool

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [paths...]",
		Short: "Detect indentation styles",
		Long:  detectLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Detect(context.Background(), domain.DetectArgs{
				Paths:           parsePaths(args),
				Exclude:         viper.GetStringSlice(excludeConfigKey),
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         viper.GetInt(detectParallelConfigKey),
				SkipDocComments: viper.GetBool(skipDocConfigKey),
			})
		},
	}

	configureDetectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func configureDetectFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&detectParallelFlag, detectParallelFlagName, "p", viper.GetInt(detectParallelConfigKey), "number of parallel workers for detection")
	bindFlagToConfig(cmd.Flags().Lookup(detectParallelFlagName), detectParallelConfigKey)

	cmd.Flags().BoolVar(&detectSkipDocFlag, skipDocFlagName, viper.GetBool(skipDocConfigKey), "skip POD-style documentation blocks when gathering evidence")
	bindFlagToConfig(cmd.Flags().Lookup(skipDocFlagName), skipDocConfigKey)
}

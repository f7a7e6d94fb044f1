package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boscoin.io/votebank/cmd/votebank/common"
	"boscoin.io/votebank/lib/version"
)

var flagVersionFormat string

func init() {
	versionCmd.Flags().StringVar(&flagVersionFormat, "format", "", "format={json, prettyjson, yaml}")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(c *cobra.Command, args []string) {
		if len(flagVersionFormat) < 1 {
			fmt.Printf("%s\n", version.ToDetailVersion())
			return
		}

		encode, ok := common.DefaultEncodes[flagVersionFormat]
		if !ok {
			common.PrintFlagsError(c, "--format", fmt.Errorf(`"%s" not recognized`, flagVersionFormat))
		}
		if err := encode(version.Info(), os.Stdout); err != nil {
			common.PrintError(c, err)
		}
	},
}

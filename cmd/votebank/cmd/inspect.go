package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	cmdcommon "boscoin.io/votebank/cmd/votebank/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/votebank"
)

var (
	inspectCmd *cobra.Command

	flagInspectStorage string
	flagInspectFormat  string
)

type inspectedVoteBank struct {
	Address string `json:"address" yaml:"address"`

	votebank.Account `yaml:",inline"`
}

var inspectTemplate = template.Must(template.New("").Parse(`        Address: {{ .Address }}
        Variant: {{ .Variant }}
 Is Open To Vote: {{ .IsOpenToVote }}
              GM: {{ .GMCount }}
              GN: {{ .GNCount }}{{ range $i, $v := .Voters }}
        Voter#{{ $i }}: {{ $v }}{{ end }}
`))

var inspectEncoders = map[string]cmdcommon.Encode{
	"json":       cmdcommon.DefaultEncodes["json"],
	"prettyjson": cmdcommon.DefaultEncodes["prettyjson"],
	"yaml":       cmdcommon.DefaultEncodes["yaml"],
	"default": func(v interface{}, w io.Writer) error {
		return inspectTemplate.Execute(w, v)
	},
}

func init() {
	inspectCmd = &cobra.Command{
		Use:   "inspect <vote bank address>",
		Short: "Print the vote bank stored in the storage",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			encode, ok := inspectEncoders[flagInspectFormat]
			if !ok {
				cmdcommon.PrintFlagsError(c, "--format", fmt.Errorf(`"%s" not recognized`, flagInspectFormat))
			}

			storageConfig, err := storage.NewConfigFromString(flagInspectStorage)
			if err != nil {
				cmdcommon.PrintFlagsError(c, "--storage", err)
			}

			st, err := storage.NewStorage(storageConfig)
			if err != nil {
				cmdcommon.PrintFlagsError(c, "--storage", err)
			}
			defer st.Close()

			v, err := inspectVoteBank(st, args[0])
			if err != nil {
				cmdcommon.PrintError(c, err)
			}

			if err := encode(v, os.Stdout); err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}

	inspectCmd.Flags().StringVar(&flagInspectStorage, "storage", defaultStorageConfig(), "storage uri")
	inspectCmd.Flags().StringVar(&flagInspectFormat, "format", "default", "format={default, json, prettyjson, yaml}")

	rootCmd.AddCommand(inspectCmd)
}

// inspectVoteBank loads the record straight from the storage; the variant
// comes from the record itself.
func inspectVoteBank(st *storage.LevelDBBackend, address string) (inspectedVoteBank, error) {
	if _, err := keypair.RawPublicKey(address); err != nil {
		return inspectedVoteBank{}, err
	}

	account, err := votebank.NewLevelDBStore(st).Load(address)
	if err != nil {
		return inspectedVoteBank{}, err
	}

	return inspectedVoteBank{Address: address, Account: *account}, nil
}

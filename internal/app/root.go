// internal/app/root.go
package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"biosci/internal/config"
	"biosci/internal/logging"
	"biosci/internal/ops"
	"biosci/internal/version"
)

// state is shared by every command of one run.
type state struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	env     ops.Env
	log     *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

func newRootCmd(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "biosci",
		Short: "Sequence analysis from the command line",
		Long: `biosci runs sequence analyses on DNA, RNA and protein: reverse complement,
transcription, translation, GC content, molecular weight, motif and ORF search,
protein profiles, pairwise alignment, distances, melting temperature and remote
BLAST searches. Every analysis is also available as a JSON request through
"call" and "batch".`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("biosci version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfgFile, "config", "", "config file (default ./biosci.yaml or $HOME/.config/biosci/biosci.yaml)")
	pf.StringP("output", "o", "text", "output format: text, json or jsonl")
	pf.BoolP("quiet", "q", false, "suppress warnings on stderr")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	bind(st.v, pf, map[string]string{
		"output":     "output",
		"quiet":      "quiet",
		"log.level":  "log-level",
		"log.format": "log-format",
	})

	root.AddCommand(
		newRevCompCmd(st),
		newTranscribeCmd(st),
		newTranslateCmd(st),
		newGCCmd(st),
		newWeightCmd(st),
		newMotifCmd(st),
		newORFsCmd(st),
		newProteinCmd(st),
		newAlignCmd(st),
		newDistanceCmd(st),
		newTmCmd(st),
		newCallCmd(st),
		newBatchCmd(st),
		newBlastCmd(st),
		newTablesCmd(st),
		newVersionCmd(st),
	)
	return root
}

// bind ties config keys to flags so a set flag beats file and environment.
func bind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// load resolves the configuration and builds the analysis environment.
func (st *state) load() error {
	cfg, err := config.Load(st.v, st.cfgFile)
	if err != nil {
		return usageErr(err)
	}
	log, err := logging.New(st.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return usageErr(err)
	}
	env, err := buildEnv(cfg)
	if err != nil {
		return usageErr(err)
	}
	st.cfg, st.log, st.env = cfg, log, env
	st.log.Debug("config loaded", "file", st.v.ConfigFileUsed(), "output", cfg.Output)
	return nil
}

func newVersionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "biosci version "+version.Version+"\n")
			if err != nil {
				return ioErr(err)
			}
			return nil
		},
	}
}

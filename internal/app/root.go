// Package app wires the fpgrowth command line: flags, configuration,
// logging and the mine/header commands.
package app

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fpgrowth/internal/config"
	"github.com/katalvlaran/fpgrowth/internal/input"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *log.Logger
}

// NewRootCmd returns the fpgrowth root command with its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: log.New()}

	root := &cobra.Command{
		Use:   "fpgrowth",
		Short: "Mine frequent itemsets from transactions with FP-Growth",
		Long: `fpgrowth reads transactions (one per line, items separated by commas)
and lists every itemset that occurs in at least --min-support transactions.

Examples:
  # Itemsets present in at least two baskets
  fpgrowth mine baskets.txt --min-support 2

  # Itemsets present in at least 30% of baskets, as JSON
  fpgrowth mine baskets.txt --min-support 0.3 --relative -o json

  # Inspect the FP-tree header table
  cat baskets.txt | fpgrowth header --min-support 2`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", fmt.Sprintf("config file (default is ./%s.yaml or $HOME/%s.yaml)", config.DefaultConfigName, config.DefaultConfigName))
	pf.String("log-level", "warning", "Log level: debug, info, warning, error")
	pf.Float64("min-support", 1.0, "minimum number of transactions an itemset must occur in")
	pf.Bool("relative", false, "interpret --min-support as a fraction of all transactions")
	pf.String("separator", ",", "item separator within a transaction line")
	pf.StringP("format", "o", "table", "output format: "+strings.Join(config.Formats, ", "))
	bindFlags(a.v, pf)

	root.SuggestionsMinimumDistance = 2
	root.AddCommand(a.mineCmd())
	root.AddCommand(a.headerCmd())

	return root
}

// init loads configuration and sets up logging before any command runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ll, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		ll = log.WarnLevel
	}
	a.log.SetLevel(ll)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
	a.log.WithField("config", a.v.ConfigFileUsed()).Debug("configuration loaded")

	return nil
}

// readTransactions reads from the file named in args, or from the
// command's input when no file (or "-") is given.
func (a *app) readTransactions(cmd *cobra.Command, args []string) ([][]string, error) {
	if len(args) == 0 || args[0] == "-" {
		a.log.Debug("reading transactions from stdin")
		return input.Read(cmd.InOrStdin(), a.cfg.Separator)
	}
	a.log.WithField("file", args[0]).Debug("reading transactions")
	return input.ReadFile(args[0], a.cfg.Separator)
}

// bindFlags binds every flag except --config to the viper key of the same
// name with dashes turned into underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

package app

import (
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpgrowth/internal/render"
	"github.com/katalvlaran/fpgrowth/mining"
)

func (a *app) mineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine [file]",
		Short: "List frequent itemsets",
		Long: `Mine every itemset whose support reaches the minimum support.

The table output lists itemsets in discovery order, then groups them by the
items they contain. Use --pattern-base distinct to reproduce tools that feed
each conditional prefix path once instead of weighting it by its count.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runMine,
	}

	fs := cmd.Flags()
	fs.String("pattern-base", "weighted", "conditional pattern base: weighted or distinct")
	fs.Int("max-length", 0, "maximum itemset size (0 = unlimited)")
	fs.Bool("verify", false, "recount every itemset against the input and warn on mismatches")
	bindFlags(a.v, fs)

	return cmd
}

func (a *app) runMine(cmd *cobra.Command, args []string) error {
	tx, err := a.readTransactions(cmd, args)
	if err != nil {
		return err
	}
	threshold, err := a.cfg.Threshold(len(tx))
	if err != nil {
		return err
	}

	a.log.WithFields(log.Fields{
		"transactions": humanize.Comma(int64(len(tx))),
		"min_support":  threshold,
		"pattern_base": a.cfg.PatternBase,
	}).Info("mining frequent itemsets")

	opts := append(a.cfg.MiningOptions(),
		mining.WithContext(cmd.Context()),
		mining.WithOnConditionalTree(func(depth, items, nodes int) {
			a.log.WithFields(log.Fields{"depth": depth, "items": items, "nodes": nodes}).Trace("conditional tree")
		}),
	)
	res, err := mining.Mine(tx, threshold, opts...)
	if err != nil {
		return err
	}
	a.log.WithField("itemsets", res.Len()).Info("mining done")

	if a.cfg.Verify {
		mismatches := res.Verify(tx)
		for _, m := range mismatches {
			a.log.WithFields(log.Fields{
				"itemset":  m.Itemset.Items,
				"reported": m.Itemset.Support,
				"actual":   m.Actual,
			}).Warn("support mismatch")
		}
		if len(mismatches) == 0 {
			a.log.Info("all supports verified")
		}
	}

	return render.Result(cmd.OutOrStdout(), res, len(tx), a.cfg.Format)
}

package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fpgrowth/fptree"
	"github.com/katalvlaran/fpgrowth/internal/render"
)

func (a *app) headerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header [file]",
		Short: "Show the FP-tree header table",
		Long: `Build the top-level FP-tree and print, for every frequent item in
canonical order (support descending, item ascending), its support and the
number of tree nodes carrying it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runHeader,
	}
}

func (a *app) runHeader(cmd *cobra.Command, args []string) error {
	tx, err := a.readTransactions(cmd, args)
	if err != nil {
		return err
	}
	threshold, err := a.cfg.Threshold(len(tx))
	if err != nil {
		return err
	}

	tree, err := fptree.Build(tx, threshold)
	if err != nil {
		return err
	}
	a.log.WithFields(log.Fields{
		"items": tree.Header().Len(),
		"nodes": tree.Len(),
	}).Info("tree built")

	return render.Header(cmd.OutOrStdout(), tree, a.cfg.Format)
}

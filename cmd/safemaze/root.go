package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/safemaze/explore"
	"github.com/katalvlaran/safemaze/grid"
	"github.com/katalvlaran/safemaze/gridio"
	"github.com/katalvlaran/safemaze/region"
	"github.com/katalvlaran/safemaze/view"
)

// screenFactory opens a terminal screen; tests substitute a simulation.
type screenFactory func() (tcell.Screen, error)

func newRootCmd(log *logrus.Logger, newScreen screenFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "safemaze",
		Short: "Mark the cells of a maze from which a wall-following walk always returns to a base",
		Long: `safemaze reads a maze from standard input and writes it back with every
cell proven safe rewritten as 'S'.

Input rows must all have the same length and use only
  '#'  wall
  ' '  free cell
  'B'  base`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classify(cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newViewCmd(log, newScreen))
	return root
}

// classify is the whole filter: parse, explore, render.
func classify(in io.Reader, out io.Writer, log *logrus.Logger) error {
	g, err := gridio.Parse(in)
	if err != nil {
		return err
	}
	run(g, log)
	return gridio.Render(out, g)
}

// run explores g and logs what happened.
func run(g *grid.Grid, log *logrus.Logger) {
	log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"bases":  len(g.Bases()),
	}).Debug("grid parsed")

	var stats explore.Stats
	explore.Explore(g, explore.WithStats(&stats))
	log.WithFields(logrus.Fields{
		"passes":   stats.Passes,
		"visits":   stats.Visits,
		"resolved": stats.Resolved,
		"promoted": stats.Promoted,
	}).Debug("exploration finished")

	s := region.Summarize(g)
	log.WithFields(logrus.Fields{
		"safe":        s.Safe,
		"free":        s.Free,
		"unreachable": s.Unreachable,
		"components":  s.Components,
		"isolated":    s.Isolated,
	}).Debug("census")
	if s.Bases == 0 {
		log.Warn("grid has no base; no cell can be marked safe")
	}
}

func newViewCmd(log *logrus.Logger, newScreen screenFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Explore a maze file and browse the result in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			g, err := gridio.Parse(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			run(g, log)

			s, err := newScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := s.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer s.Fini()
			view.New(s, g, view.DefaultPalette()).Run()
			return nil
		},
	}
}

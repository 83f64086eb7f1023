package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/problems"
)

func newColorCommand(flags *solveFlags) *cobra.Command {
	var (
		regions []string
		borders []string
		palette []string
	)

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color a map so no bordering regions match",
		Example: `  csolve color \
    --regions wa,nt,sa,q,nsw,v,t \
    --borders wa-nt,wa-sa,nt-sa,nt-q,sa-q,sa-nsw,sa-v,q-nsw,nsw-v \
    --palette red,green,blue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(regions) == 0 {
				return fmt.Errorf("--regions is required")
			}
			if len(palette) == 0 {
				return fmt.Errorf("--palette is required")
			}
			pairs := make([][2]string, 0, len(borders))
			for _, border := range borders {
				a, b, ok := strings.Cut(border, "-")
				if !ok {
					return fmt.Errorf("border %q must be of the form region-region", border)
				}
				pairs = append(pairs, [2]string{a, b})
			}
			coloring, err := problems.NewMapColoring(regions, pairs, palette)
			if err != nil {
				return err
			}
			return runSolve(cmd, flags, coloring.Problem(), csp.DefaultSolverConfig(), coloring.Render)
		},
	}

	cmd.Flags().StringSliceVar(&regions, "regions", nil, "comma-separated region names")
	cmd.Flags().StringSliceVar(&borders, "borders", nil, "comma-separated borders, each region-region")
	cmd.Flags().StringSliceVar(&palette, "palette", nil, "comma-separated color names")

	return cmd
}

package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	var menuPath string
	var angle, distance float64

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Hit test one polar sample against a menu's root partition",
		Long: `Resolves the category and option under a pointer at --angle degrees and
--distance pixels from the anchor, using the root partition's convention.

Example:
  radialsim probe --menu testdata/quickaction.yaml --angle 150 --distance 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd.OutOrStdout(), menuPath, angle, distance)
		},
	}
	cmd.Flags().StringVar(&menuPath, "menu", "", "menu definition (YAML)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "angle in degrees")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the anchor")
	_ = cmd.MarkFlagRequired("menu")
	return cmd
}

func runProbe(out io.Writer, menuPath string, angle, distance float64) error {
	cfg, err := radial.LoadMenuFile(menuPath)
	if err != nil {
		return err
	}
	p, err := cfg.BuildPartition()
	if err != nil {
		return err
	}
	h := radial.Resolve(p, radial.PolarSample{Angle: angle, Distance: distance}, p.HitConfig())
	switch {
	case !h.HasCategory():
		fmt.Fprintf(out, "partition=%s none\n", p.ID())
	case !h.HasOption():
		fmt.Fprintf(out, "partition=%s category=%s\n", p.ID(), h.CategoryID())
	default:
		fmt.Fprintf(out, "partition=%s category=%s option=%d label=%s\n",
			p.ID(), h.CategoryID(), h.Option, h.Category.Option(h.Option).Label)
	}
	return nil
}

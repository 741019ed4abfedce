package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReplayCmd() *cobra.Command {
	var menuPath, scriptPath, anchor string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a gesture script against a menu",
		Long: `Builds the controller described by --menu, replays --script one pointer
event per frame and prints each produced event.

Example:
  radialsim replay --menu testdata/epoch.yaml --script testdata/epoch_full.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseVec(anchor)
			if err != nil {
				return fmt.Errorf("--anchor: %w", err)
			}
			return runReplay(cmd.OutOrStdout(), menuPath, scriptPath, at)
		},
	}
	cmd.Flags().StringVar(&menuPath, "menu", "", "menu definition (YAML)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "gesture script (YAML or JSON)")
	cmd.Flags().StringVar(&anchor, "anchor", "0,0", "initial anchor as x,y")
	_ = cmd.MarkFlagRequired("menu")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func runReplay(out io.Writer, menuPath, scriptPath string, anchor radial.Vec2) error {
	cfg, err := radial.LoadMenuFile(menuPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read gesture script: %w", err)
	}
	script, err := radial.LoadScript(data)
	if err != nil {
		return err
	}
	ctrl, err := cfg.Build(radial.WithLogger(logger), radial.WithEventSink(printer{out}))
	if err != nil {
		return err
	}
	p, err := cfg.BuildPartition()
	if err != nil {
		return err
	}

	logger.Info("Replaying gesture script",
		zap.String("menu", menuPath),
		zap.String("mode", cfg.Mode),
		zap.Int("steps", len(script.Steps)))

	runner := radial.NewScriptRunner(script, anchor, p.Convention())
	if err := runner.RunAll(ctrl); err != nil {
		return err
	}
	if !ctrl.Closed() {
		fmt.Fprintln(out, "open")
	}
	return nil
}

// printer writes one line per menu event.
type printer struct {
	w io.Writer
}

func (p printer) EmitEvent(ev radial.MenuEvent) {
	fmt.Fprintln(p.w, formatEvent(ev))
}

func formatEvent(ev radial.MenuEvent) string {
	var b strings.Builder
	b.WriteString(ev.Type.String())
	if ev.Type == radial.EventHoverChanged && ev.CategoryID == "" {
		b.WriteString(" none")
	}
	if ev.CategoryID != "" {
		fmt.Fprintf(&b, " category=%s", ev.CategoryID)
	}
	if ev.Option != radial.NoOption {
		fmt.Fprintf(&b, " option=%d", ev.Option)
	}
	if ev.Field != "" {
		fmt.Fprintf(&b, " field=%s", ev.Field)
	}
	if ev.Depth > 0 {
		fmt.Fprintf(&b, " depth=%d", ev.Depth)
	}
	if ev.Type == radial.EventClosed {
		fmt.Fprintf(&b, " reason=%s", ev.Reason)
	}
	if ev.Composite != nil {
		ev.Composite.Each(func(field string, value any) {
			fmt.Fprintf(&b, " %s=%v", field, value)
		})
	}
	return b.String()
}

func parseVec(s string) (radial.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return radial.Vec2{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return radial.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return radial.Vec2{}, err
	}
	return radial.Vec2{X: x, Y: y}, nil
}

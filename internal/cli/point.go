package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/infra/console"
	"github.com/aalvaropc/cartlab/internal/infra/logger"
	"github.com/aalvaropc/cartlab/internal/usecase"
)

func pointCmd(st *appState) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "point",
		Short: "Work with points bounded by a shared coordinate limit",
	}

	c.PersistentFlags().IntVar(&limit, "limit", 0, "Coordinate limit shared by all points (overrides cartlab.yaml)")

	// bounds resolves the limit once per invocation; every point made for
	// that invocation shares it.
	bounds := func(cmd *cobra.Command) (*domain.Bounds, domain.Config, error) {
		ws, err := loadWorkspace(st.workspace)
		if err != nil {
			return nil, domain.Config{}, err
		}
		l := ws.cfg.Point.Limit
		if cmd.Flags().Changed("limit") {
			l = limit
		}
		return domain.NewBounds(l), ws.cfg, nil
	}

	c.AddCommand(pointDistanceCmd(bounds), pointReadCmd(bounds))
	return c
}

type boundsFunc func(cmd *cobra.Command) (*domain.Bounds, domain.Config, error)

func pointDistanceCmd(bounds boundsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "distance X1 Y1 X2 Y2",
		Short: "Print the distance between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, cfg, err := bounds(cmd)
			if err != nil {
				return err
			}

			coords := make([]int, 0, 4)
			for _, a := range args {
				v, err := parseCoordinate(a)
				if err != nil {
					return err
				}
				coords = append(coords, v)
			}

			from, err := domain.NewPoint(b, coords[0], coords[1])
			if err != nil {
				return err
			}
			to, err := domain.NewPoint(b, coords[2], coords[3])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Distance from %s to %s: %.*f\n",
				from, to, cfg.Table.Precision, from.DistanceTo(to))
			return nil
		},
	}
}

func pointReadCmd(bounds boundsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Read a point interactively and report its distance to the origin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, cfg, err := bounds(cmd)
			if err != nil {
				return err
			}

			origin, err := domain.NewPoint(b, 0, 0)
			if err != nil {
				return err
			}
			p, err := domain.DefaultPoint(b)
			if err != nil {
				// Limit 0 cannot hold the default (1, 1).
				p = origin
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Coordinates must be between %d and %d.\n", -b.Limit(), b.Limit())

			uc := usecase.NewReadPoint(console.NewLineReader(cmd.InOrStdin()), out, usecase.WithLogger(logger.L()))
			if err := uc.Execute(cmd.Context(), &p); err != nil {
				fmt.Fprintln(out)
				return err
			}

			fmt.Fprintf(out, "\nYou entered %s, %.*f from the origin.\n", p, cfg.Table.Precision, p.DistanceTo(origin))
			return nil
		},
	}
}

// parseCoordinate accepts the classifier's integer form only.
func parseCoordinate(s string) (int, error) {
	in := strings.TrimSpace(s)
	if domain.Classify(in) != domain.NumberInteger {
		return 0, fmt.Errorf("coordinate %q is not a whole number", s)
	}
	v, err := strconv.Atoi(in)
	if err != nil {
		return 0, &domain.OpError{Op: "cli.parse_coordinate", Kind: domain.KindOutOfRange, Err: err}
	}
	return v, nil
}

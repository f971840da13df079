package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cartlab/internal/infra/logger"
)

func Execute() {
	st := &appState{}
	cmd := newRoot(st)
	err := cmd.Execute()
	st.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRoot(&appState{})
}

type appState struct {
	debug     bool
	workspace string
	cleanup   func() error
}

// setupLogging writes logs under the workspace when one is found. Outside a
// workspace it only logs with --debug, into the working directory.
func (s *appState) setupLogging() {
	if s.cleanup != nil {
		return
	}

	root := s.workspace
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		wd, _ = filepath.Abs(wd)

		if found, ferr := locator.FindRoot(wd); ferr == nil && found != "" {
			root = found
		} else if s.debug {
			root = wd
		}
	}
	if root == "" {
		return
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: s.debug,
	})
	s.cleanup = cleanup
}

func (s *appState) close() {
	if s.cleanup != nil {
		_ = s.cleanup()
		s.cleanup = nil
	}
}

func newRoot(st *appState) *cobra.Command {
	var min, max float64

	cmd := &cobra.Command{
		Use:          "cartlab",
		Short:        "Numeric-string classifier and bounded point tester",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			st.setupLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(st.workspace)
			if err != nil {
				return err
			}

			cfg := ws.cfg
			if cmd.Flags().Changed("min") {
				cfg.Reader.Min = min
			}
			if cmd.Flags().Changed("max") {
				cfg.Reader.Max = max
			}

			return runHarness(cmd.Context(), harnessIO{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
			}, cfg, logger.L())
		},
	}

	cmd.PersistentFlags().BoolVar(&st.debug, "debug", false, "enable verbose logging to .cartlab/logs/cartlab.log")
	cmd.PersistentFlags().StringVarP(&st.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().Float64Var(&min, "min", 0, "Smallest accepted number (overrides cartlab.yaml)")
	cmd.Flags().Float64Var(&max, "max", 0, "Largest accepted number (overrides cartlab.yaml)")

	cmd.AddCommand(
		classifyCmd(st),
		pointCmd(st),
		initCmd(),
		tuiCmd(st),
		versionCmd(),
	)
	return cmd
}

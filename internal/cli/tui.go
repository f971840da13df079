package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/infra/config"
	"github.com/aalvaropc/cartlab/internal/infra/logger"
	"github.com/aalvaropc/cartlab/internal/ui/tui"
)

func tuiCmd(st *appState) *cobra.Command {
	var watch bool

	c := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive classifier and point explorer",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(st.workspace)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Config:     ws.cfg,
				ConfigPath: ws.configPath(),
				Bounds:     domain.NewBounds(ws.cfg.Point.Limit),
				Loader:     config.NewLoader(),
				Watch:      watch,
				Logger:     logger.L(),
				Debug:      st.debug,
			}

			return tui.Run(deps)
		},
	}

	c.Flags().BoolVar(&watch, "watch", false, "Reload cartlab.yaml on change and apply its point limit")
	return c
}

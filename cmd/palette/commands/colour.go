package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/session"
	"hexbot-palette/internal/ui"
)

func printView(v session.View) error {
	if v.Base == "" {
		return session.ErrNoBase
	}
	base, err := colour.Parse(v.Base)
	if err != nil {
		return err
	}
	fmt.Print(ui.RenderColour(base, *v.Contrast, v.Related))
	return nil
}

func randomCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch a random colour and show its related colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), appCtx.Config.HexbotTimeout())
			defer cancel()

			v, err := appCtx.Session.Refresh(ctx)
			if err != nil {
				return err
			}
			if save {
				if v, err = appCtx.Session.SaveBase(); err != nil {
					return err
				}
				ui.LogStatus("success", "Saved "+v.Base)
			}
			return printView(v)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "add the fetched colour to the palette")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <#rrggbb>",
		Short: "Show the related colours and contrast of a colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			return printView(appCtx.Session.SetBase(c))
		},
	}
}

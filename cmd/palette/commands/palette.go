package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/ui"
)

func saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <#rrggbb>",
		Short: "Add a colour to the saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := appCtx.Session.Save(c)
			if err != nil {
				return err
			}
			ui.LogStatus("success", fmt.Sprintf("Saved %s (%d in palette)", c.Hex(), len(v.Saved)))
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <#rrggbb>",
		Aliases: []string{"rm"},
		Short:   "Remove a colour from the saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			wasSaved := appCtx.Palette.Contains(c)
			v, err := appCtx.Session.Remove(c)
			if err != nil {
				return err
			}
			if !wasSaved {
				ui.LogStatus("warn", c.Hex()+" was not in the palette")
				return nil
			}
			ui.LogStatus("success", fmt.Sprintf("Removed %s (%d in palette)", c.Hex(), len(v.Saved)))
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the saved palette",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(ui.RenderSaved(appCtx.Session.Saved()))
			return nil
		},
	}
}

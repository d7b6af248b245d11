package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"hexbot-palette/internal/config"
	"hexbot-palette/internal/hexbot"
	"hexbot-palette/internal/kv"
	"hexbot-palette/internal/palette"
	"hexbot-palette/internal/session"
	"hexbot-palette/internal/ui"
)

// Version is set at build time with -ldflags "-X ...commands.Version=..."
var Version = "dev"

const tagline = "random colours, related colours, saved colours"

type app struct {
	Config  *config.Config
	Store   kv.Store
	Palette *palette.Store
	Session *session.Session
}

var (
	configPath string
	home       string
	storeKind  string
	hexbotURL  string
	noBanner   bool
	appCtx     *app
)

func Execute() error {
	root := &cobra.Command{
		Use:           "palette",
		Short:         "Derive related colours and keep a saved palette",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			ui.SetLevel(cfg.Env.LogLevel)

			if !noBanner {
				ui.EmitBanner(Version, tagline)
			}

			st, err := kv.Open(cfg.Store, cfg.Home)
			if err != nil {
				return err
			}
			pal := palette.New(st)
			client := hexbot.New(cfg.HexbotURL, cfg.HexbotTimeout())
			appCtx = &app{
				Config:  cfg,
				Store:   st,
				Palette: pal,
				Session: session.New(client, pal),
			}
			ui.LogStatus("debug", "Store: "+cfg.Store+" at "+cfg.Home)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Store.Close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "JSON config file (default ./palette.json)")
	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.hexbot-palette)")
	root.PersistentFlags().StringVar(&storeKind, "store", "", "store backend: file, sqlite or memory")
	root.PersistentFlags().StringVar(&hexbotURL, "hexbot", "", "random colour endpoint URL")
	root.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "do not print the banner")

	root.AddCommand(randomCmd(), showCmd(), saveCmd(), removeCmd(), listCmd(), serveCmd(), hashKeyCmd())
	return root.Execute()
}

// applyFlags overlays the persistent flags that were set on cfg.
func applyFlags(cfg *config.Config) {
	if home != "" {
		cfg.Home = home
	}
	if kind := strings.ToLower(strings.TrimSpace(storeKind)); kind != "" {
		cfg.Store = kind
	}
	if hexbotURL != "" {
		cfg.HexbotURL = hexbotURL
	}
}

// Package cli implements the shopctl command tree. Every command works
// through the same App wiring: config from the environment, a sqlite or
// redis backed local state store, the session and cart stores on top of
// it, and the typed backend client.
package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sultanm/shopfront/internal/cart"
	"github.com/sultanm/shopfront/internal/localstate"
	"github.com/sultanm/shopfront/internal/session"
	"github.com/sultanm/shopfront/pkg/config"
	"github.com/sultanm/shopfront/pkg/logger"
	"github.com/sultanm/shopfront/pkg/metrics"
	"github.com/sultanm/shopfront/pkg/shopapi"
)

// App bundles the wired dependencies the commands share.
type App struct {
	Cfg      *config.Config
	Logg     *logger.Logger
	Local    localstate.Store
	Session  *session.Store
	Cart     *cart.Store
	API      *shopapi.Client
	Registry *prometheus.Registry
}

var (
	flagDebug bool

	app *App
)

// NewRootCmd builds the shopctl command tree. Wiring happens in the
// persistent pre-run so tests can install their own App beforehand.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Storefront client for the springshop backend",
		Long:  "shopctl browses products, manages the shopping cart, and places orders against a springshop backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return nil
			}
			wired, err := wireApp(cmd.Context())
			if err != nil {
				return err
			}
			app = wired
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil || app.Local == nil {
				return nil
			}
			return app.Local.Close()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newProductsCmd(),
		newCategoriesCmd(),
		newCartCmd(),
		newCheckoutCmd(),
		newOrdersCmd(),
		newAdminCmd(),
	)

	return root
}

func wireApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := logger.ParseLevel(cfg.App.LogLevel)
	if flagDebug {
		level = logger.ParseLevel("debug")
	}
	logg := logger.New(logger.Options{ServiceName: "shopctl", Level: level})

	local, err := openLocalState(ctx, cfg, logg)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(local, logg)
	if err := sess.Initialize(ctx); err != nil {
		local.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewClientMetrics(registry)

	api := shopapi.NewClient(
		shopapi.WithBaseURL(cfg.API.BaseURL),
		shopapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		shopapi.WithTokenSource(sess),
		shopapi.WithLogger(logg),
		shopapi.WithMetrics(m),
	)

	return &App{
		Cfg:      cfg,
		Logg:     logg,
		Local:    local,
		Session:  sess,
		Cart:     cart.NewStore(api, local, logg, m),
		API:      api,
		Registry: registry,
	}, nil
}

func openLocalState(ctx context.Context, cfg *config.Config, logg *logger.Logger) (localstate.Store, error) {
	switch cfg.State.Backend {
	case "redis":
		return localstate.OpenRedis(ctx, cfg.Redis)
	case "sqlite", "":
		return localstate.OpenSQLite(ctx, cfg.State.Path, logg)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
}

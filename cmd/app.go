package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daxvengers/daxvengers/internal/api"
	"github.com/daxvengers/daxvengers/internal/config"
	"github.com/daxvengers/daxvengers/internal/logger"
	"github.com/daxvengers/daxvengers/internal/progress"
	"github.com/daxvengers/daxvengers/internal/reconcile"
	"github.com/daxvengers/daxvengers/internal/session"
	"github.com/daxvengers/daxvengers/internal/store"
)

// app holds the wired components shared by every command.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	client     *api.Client
	session    *session.Adapter
	db         *store.Store
	progress   *progress.Store
	reconciler *reconcile.Reconciler
	detach     func()
}

// newApp loads configuration, applies flag overrides and builds the client.
// Nothing touches the local cache until open is called.
func newApp(cmd *cobra.Command) (*app, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("user"); v != "" {
		cfg.User = v
	}
	if v, _ := cmd.Flags().GetString("mission"); v != "" {
		cfg.Mission = v
	}

	mode := "quiet"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		mode = cfg.LogMode
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	sess := session.NewAdapter()
	sess.InitGuest(cfg.User)

	return &app{
		cfg:     cfg,
		log:     log,
		client:  api.New(cfg.APIURL, api.WithTimeout(cfg.HTTPTimeout), api.WithLogger(log)),
		session: sess,
	}, nil
}

// open connects the local cache, builds the progress store and mirrors it to
// the cache.
func (a *app) open(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd, a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.db = db

	a.progress = progress.NewStore(a.client, a.session,
		progress.WithCatalog(a.client),
		progress.WithMission(a.cfg.Mission),
	)
	a.reconciler = reconcile.New(db.Cache(), a.session, a.log)
	a.detach = a.reconciler.Attach(a.progress)
	return nil
}

// start opens the app and hydrates the progress store. A fallback to cached
// or default progress is reported on stderr.
func (a *app) start(cmd *cobra.Command) (reconcile.StartResult, error) {
	if err := a.open(cmd); err != nil {
		return reconcile.StartResult{}, err
	}
	res, err := a.reconciler.Start(cmd.Context(), a.progress, a.cfg.Mission)
	if err != nil {
		return res, fmt.Errorf("load progress: %w", err)
	}
	if res.Warning != nil {
		fmt.Fprintf(os.Stderr, "Backend unavailable (%v); showing %s progress.\n", res.Warning, res.Source)
	}
	return res, nil
}

func (a *app) Close() {
	if a.detach != nil {
		a.detach()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("close store", "error", err)
		}
	}
	a.log.Sync()
}

// withApp is the RunE body shared by commands that need hydrated progress.
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if _, err := a.start(cmd); err != nil {
			return err
		}
		return fn(cmd, a, args)
	}
}

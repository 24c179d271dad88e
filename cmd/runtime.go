package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/store"
)

// startupMessage is all the user sees when the app cannot start.
const startupMessage = "An error occurred while loading the application. Please restart."

type startupError struct {
	cause error
}

func (e *startupError) Error() string { return startupMessage }

func (e *startupError) Unwrap() error { return e.cause }

// startupFailure logs the cause and hides it behind the generic message.
func startupFailure(err error) error {
	slog.Error("startup failed", "error", err)
	return &startupError{cause: err}
}

// runtime is the wiring shared by the commands that touch user data.
type runtime struct {
	env      config.Env
	cfg      config.Config
	store    *store.Store
	tracker  *progress.Tracker
	repo     *questions.Repository
	closeLog func() error
}

// setup resolves settings (flag, then environment, then default), starts
// logging and opens the store. fileLog sends logs to a file instead of
// stderr, for commands that own the terminal.
func setup(cmd *cobra.Command, fileLog bool) (*runtime, error) {
	env := config.FromEnv()
	env.ConfigPath = flagOr(cmd, "config", env.ConfigPath)
	env.DBDriver = flagOr(cmd, "db-driver", env.DBDriver)
	env.Source = flagOr(cmd, "source", env.Source)
	env.LogPath = flagOr(cmd, "log", env.LogPath)

	driver := store.Driver(env.DBDriver)
	dbPath, err := resolveDBPath(cmd, driver, env.DBPath)
	if err != nil {
		return nil, &startupError{cause: err}
	}
	env.DBPath = dbPath

	closeLog := func() error { return nil }
	if fileLog {
		logPath := env.LogPath
		if logPath == "" && driver != store.DriverPostgres {
			logPath = logging.DefaultPath(dbPath)
		}
		closeLog, err = logging.Init(logPath, slog.LevelInfo)
		if err != nil {
			return nil, &startupError{cause: err}
		}
	} else if env.LogPath != "" {
		closeLog, err = logging.Init(env.LogPath, slog.LevelInfo)
		if err != nil {
			return nil, &startupError{cause: err}
		}
	} else {
		slog.SetDefault(logging.New(os.Stderr, slog.LevelWarn))
	}

	rt := &runtime{env: env, closeLog: closeLog}

	rt.cfg, err = config.Resolve(env.ConfigPath)
	if err != nil {
		rt.Close()
		return nil, startupFailure(err)
	}

	rt.store, err = store.OpenDriver(cmd.Context(), driver, dbPath)
	if err != nil {
		rt.Close()
		return nil, startupFailure(err)
	}

	rt.tracker = progress.NewTracker(rt.store.KVRepo(), rt.cfg.StorageKey, rt.cfg.ModuleIDs())
	rt.repo = questions.NewRepository(questions.NewFetcher(env.Source), rt.cfg.Modules, rt.tracker)

	slog.Info("started",
		"config", env.ConfigPath,
		"driver", string(driver),
		"source", env.Source,
		"modules", len(rt.cfg.Modules),
	)
	return rt, nil
}

// Close releases the store and the log file.
func (rt *runtime) Close() {
	var errs []error
	if rt.store != nil {
		errs = append(errs, rt.store.Close())
	}
	if rt.closeLog != nil {
		errs = append(errs, rt.closeLog())
	}
	if err := errors.Join(errs...); err != nil {
		slog.Warn("close", "error", err)
	}
}

// resolveDBPath returns the database location using the --db flag (highest
// priority), then QUIZDECK_DB, then the default XDG path. Postgres DSNs are
// taken as given.
func resolveDBPath(cmd *cobra.Command, driver store.Driver, envPath string) (string, error) {
	p := flagOr(cmd, "db", envPath)
	if driver == store.DriverPostgres {
		if p == "" {
			return "", fmt.Errorf("postgres driver needs a DSN in --db or QUIZDECK_DB")
		}
		return p, nil
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}

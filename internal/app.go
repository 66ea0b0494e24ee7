// Package internal provides the App struct that wires the shakshuka engine,
// its file-backed stores, and the observability layer together.
package internal

import (
	"os"
	"path/filepath"

	"github.com/admiralsuez/shakshuka/internal/cli"
	"github.com/admiralsuez/shakshuka/internal/core"
	"github.com/admiralsuez/shakshuka/internal/observability"
	"github.com/admiralsuez/shakshuka/internal/storage"
	"github.com/admiralsuez/shakshuka/pkg/models"
)

// App holds all service dependencies for shakshuka.
type App struct {
	BasePath string

	// Storage layer
	TaskStore     *storage.TaskManager
	LedgerStore   *storage.LedgerManager
	UpdateStore   *storage.UpdateManager
	StateStore    *storage.StateManager
	StatsStore    *storage.StatsManager
	SettingsStore *storage.SettingsManager
	Flusher       *storage.Flusher

	// Core engine
	Engine *core.Engine

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
	Notifier    observability.Notifier
}

// ResolveBasePath returns the data directory: $SHAKSHUKA_HOME when set,
// otherwise ~/.shakshuka, otherwise the current directory.
func ResolveBasePath() string {
	if p := os.Getenv("SHAKSHUKA_HOME"); p != "" {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".shakshuka")
	}
	return "."
}

// NewApp creates and wires all components. basePath is the directory holding
// the persisted collections and settings.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Storage layer ---
	app.TaskStore = storage.NewTaskManager(basePath)
	app.LedgerStore = storage.NewLedgerManager(basePath)
	app.UpdateStore = storage.NewUpdateManager(basePath)
	app.StateStore = storage.NewStateManager(basePath)
	app.StatsStore = storage.NewStatsManager(basePath)
	app.SettingsStore = storage.NewSettingsManager(basePath)

	settings, err := app.SettingsStore.Load()
	if err != nil {
		settings = models.DefaultSettings(storage.HostZone())
	}

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, "events.jsonl")
	if err := os.MkdirAll(basePath, 0o750); err == nil {
		if log, logErr := observability.NewJSONLEventLog(eventLogPath); logErr == nil {
			app.EventLog = log
			app.MetricsCalc = observability.NewMetricsCalculator(log)
		}
	}
	if url := os.Getenv("SHAKSHUKA_WEBHOOK_URL"); url != "" {
		app.Notifier = observability.NewWebhookNotifier(url)
	}

	// --- Core engine ---
	app.Engine = core.NewEngine(
		app.TaskStore,
		app.LedgerStore,
		app.UpdateStore,
		app.StateStore,
		app.StatsStore,
		settings,
		nil, // flusher attached below; it needs the engine's FlushAll
		observability.NewRecorder(app.EventLog),
	)
	app.Flusher = storage.NewFlusher(app.Engine.FlushAll, 0, 0)
	app.Engine.AttachScheduler(app.Flusher)

	if err := app.Engine.Load(); err != nil {
		return nil, err
	}

	// --- CLI layer ---
	cli.Engine = app.Engine
	cli.SettingsStore = app.SettingsStore
	cli.MetricsCalc = app.MetricsCalc
	cli.Notifier = app.Notifier
	cli.CloseApp = app.Close

	return app, nil
}

// Close flushes pending state and closes the event log.
func (a *App) Close() error {
	var firstErr error
	if a.Flusher != nil {
		if err := a.Flusher.Close(); err != nil {
			firstErr = err
		}
	}
	if a.EventLog != nil {
		if err := a.EventLog.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package cli

import (
	"time"

	"github.com/admiralsuez/shakshuka/internal/core"
	"github.com/admiralsuez/shakshuka/internal/observability"
	"github.com/admiralsuez/shakshuka/internal/storage"
)

// Service instances, set during app initialization in internal/app.go.
var (
	Engine        *core.Engine
	SettingsStore *storage.SettingsManager
	MetricsCalc   observability.MetricsCalculator
	Notifier      observability.Notifier

	// CloseApp flushes pending state; called before the process exits.
	CloseApp func() error
)

// nowFn returns the current instant; tests may override it.
var nowFn = time.Now

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/admiralsuez/shakshuka/internal/core"
	"github.com/admiralsuez/shakshuka/pkg/models"
)

// previousDate returns the literal calendar date one day before now in the
// user's zone.
func previousDate(now time.Time, timezone string) string {
	return core.EffectiveDate(now.AddDate(0, 0, -1), timezone, 0)
}

// emitWatcherSignals prints and forwards the one-shot payloads of an
// evaluation. Watcher transitions are consumed by the evaluation itself, so
// every caller of Evaluate must surface both payloads or they are lost.
func emitWatcherSignals(result core.EvalResult) {
	if result.Celebration != nil {
		fmt.Println(celebrationStyle.Render(result.Celebration.Message))
		Engine.AcknowledgeCelebration()
		notifyCelebration(*result.Celebration)
	}
	if result.Recap != nil {
		fmt.Println(renderRecap(*result.Recap))
		notifyRecap(*result.Recap)
	}
}

// evaluateAndEmit runs the watchers after a mutation. Every mutating command
// calls this so reset-hour crossings are caught on the first command of a new
// effective day, whichever command that happens to be.
func evaluateAndEmit() {
	emitWatcherSignals(Engine.Evaluate(nowFn()))
}

// resolveTaskID accepts a full task ID or an unambiguous prefix and returns
// the full ID.
func resolveTaskID(arg string) (string, error) {
	var matches []models.Task
	for _, t := range Engine.Tasks() {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no task matches %q", arg)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches)", arg, len(matches))
	}
}

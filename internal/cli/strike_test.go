package cli

import (
	"testing"
	"time"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// captureNotifier records delivered payloads for assertions.
type captureNotifier struct {
	celebrations []models.Celebration
	recaps       []models.RecapSummary
}

func (n *captureNotifier) NotifyCelebration(c models.Celebration) error {
	n.celebrations = append(n.celebrations, c)
	return nil
}

func (n *captureNotifier) NotifyRecap(r models.RecapSummary) error {
	n.recaps = append(n.recaps, r)
	return nil
}

func setupNotifier(t *testing.T) *captureNotifier {
	t.Helper()
	notifier := &captureNotifier{}
	prev := Notifier
	Notifier = notifier
	t.Cleanup(func() { Notifier = prev })
	return notifier
}

func setNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFn
	nowFn = func() time.Time { return now }
	t.Cleanup(func() { nowFn = prev })
}

func runCommand(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func TestStrikeSurfacesRecapOnDayAdvance(t *testing.T) {
	engine := setupEngine(t)
	notifier := setupNotifier(t)

	day1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, day1)

	task, err := engine.AddTask("water plants", "", "", nil, nil, day1)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	runCommand(t, "strike", task.ID)
	if len(notifier.recaps) != 0 {
		t.Fatalf("recaps on first day = %d, want 0", len(notifier.recaps))
	}

	// The strike is the first command of the new effective day: the
	// previous day's recap must surface alongside the strike itself.
	setNow(t, day1.AddDate(0, 0, 1))
	runCommand(t, "strike", task.ID)

	if len(notifier.recaps) != 1 {
		t.Fatalf("recaps after day advance = %d, want 1", len(notifier.recaps))
	}
	r := notifier.recaps[0]
	if r.Date != "2024-03-01" {
		t.Errorf("recap date = %q, want %q", r.Date, "2024-03-01")
	}
	if r.Struck != 1 {
		t.Errorf("recap struck = %d, want 1", r.Struck)
	}
}

func TestDoneRunsWatchers(t *testing.T) {
	engine := setupEngine(t)
	notifier := setupNotifier(t)

	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, noon)

	walk, err := engine.AddTask("walk", "", "", nil, nil, noon)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	read, err := engine.AddTask("read", "", "", nil, nil, noon)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := engine.Strike(walk.ID, "", noon); err != nil {
		t.Fatalf("Strike failed: %v", err)
	}

	// Completing the last unhandled task clears the board; the done
	// command itself must surface the celebration.
	runCommand(t, "done", read.ID)

	if len(notifier.celebrations) != 1 {
		t.Fatalf("celebrations after done = %d, want 1", len(notifier.celebrations))
	}
	if got := notifier.celebrations[0].Date; got != "2024-03-01" {
		t.Errorf("celebration date = %q, want %q", got, "2024-03-01")
	}
}

package core

import (
	"time"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// CelebrationMessage is one entry of the fixed celebratory message pool.
type CelebrationMessage struct {
	ID   string
	Text string
}

// defaultMessagePool is the fixed pool the detector draws from. Consumed IDs
// persist across sessions so no message repeats until the pool is exhausted.
var defaultMessagePool = []CelebrationMessage{
	{ID: "clean-sweep", Text: "Clean sweep! Every task handled for today."},
	{ID: "all-done", Text: "All done - the day is yours now."},
	{ID: "board-clear", Text: "Board clear. Nothing left standing."},
	{ID: "streak", Text: "Another day fully struck. Keep the streak alive."},
	{ID: "nothing-left", Text: "Nothing left on the list. Well played."},
	{ID: "full-house", Text: "Full house: every active task is done for today."},
}

// CompletionDetector watches classifier output and fires a single
// "all cleared" signal on the false-to-true transition. State lives on this
// struct and on the caller-owned WatcherState; there is no ambient lookup.
type CompletionDetector struct {
	state *models.WatcherState
	pool  []CelebrationMessage

	// cleared is the previous evaluation's all-cleared verdict.
	cleared bool
	// pending is true while a fired signal awaits display.
	pending bool
}

// NewCompletionDetector creates a detector over the shared watcher state.
// It starts in the not-cleared position with no signal pending.
func NewCompletionDetector(state *models.WatcherState) *CompletionDetector {
	return &CompletionDetector{state: state, pool: defaultMessagePool}
}

// Evaluate inspects the current partition and returns a celebration on the
// not-cleared to all-cleared transition, nil otherwise. Repeated evaluations
// while the condition persists return nil, and at most one signal fires per
// effective day: the fired date persists in the shared state, so a fresh
// process starting on an already-celebrated day stays quiet.
func (d *CompletionDetector) Evaluate(p Partition, entries []models.StrikeEntry, today string, now time.Time) *models.Celebration {
	cleared := p.AllCleared(entries, today)
	defer func() { d.cleared = cleared }()

	if !cleared {
		return nil
	}
	if d.cleared || d.pending {
		return nil
	}
	if d.state.LastCelebrationDate == today {
		return nil
	}

	msg := d.nextMessage()
	d.pending = true
	d.state.LastCelebrationDate = today
	return &models.Celebration{
		Date:      today,
		MessageID: msg.ID,
		Message:   msg.Text,
		FiredAt:   now,
	}
}

// Acknowledge marks the pending signal as displayed, allowing a future
// transition to fire again.
func (d *CompletionDetector) Acknowledge() { d.pending = false }

// nextMessage picks the first pool message not yet consumed, recording it in
// the shared state. When every message has been used the consumed set resets
// and the pool starts over.
func (d *CompletionDetector) nextMessage() CelebrationMessage {
	used := make(map[string]bool, len(d.state.UsedMessageIDs))
	for _, id := range d.state.UsedMessageIDs {
		used[id] = true
	}

	for _, m := range d.pool {
		if !used[m.ID] {
			d.state.UsedMessageIDs = append(d.state.UsedMessageIDs, m.ID)
			return m
		}
	}

	// Pool exhausted: reset and reuse from the top.
	d.state.UsedMessageIDs = []string{d.pool[0].ID}
	return d.pool[0]
}

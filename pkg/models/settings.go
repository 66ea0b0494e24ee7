package models

// DefaultResetHour is the hour-of-day (local time) after which "today" is
// considered to have begun when the user has not configured one.
const DefaultResetHour = 9

// Settings holds the per-user temporal configuration. A single logical
// instance exists per user; every temporal computation reads it. Changing it
// affects subsequent classifications only - past ledger entries are never
// re-stamped.
type Settings struct {
	ResetHour int    `json:"reset_hour" yaml:"reset_hour"`
	Timezone  string `json:"timezone" yaml:"timezone"`
}

// DefaultSettings returns settings for a user who has configured nothing:
// reset at 09:00 in the given host zone (callers pass "UTC" when the host
// zone cannot be detected).
func DefaultSettings(hostZone string) Settings {
	if hostZone == "" {
		hostZone = "UTC"
	}
	return Settings{ResetHour: DefaultResetHour, Timezone: hostZone}
}

// WatcherState is the explicit process-scoped state consumed by the recap
// generator and completion detector. It replaces ambient key-value flags:
// zero value means "no recap ever generated, no celebration ever fired, no
// message used".
type WatcherState struct {
	LastRecapDate       string   `json:"last_recap_date"`
	LastCelebrationDate string   `json:"last_celebration_date"`
	UsedMessageIDs      []string `json:"used_message_ids"`
}

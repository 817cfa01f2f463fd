package domain

// Shift names used by the bundled catalog
const (
	ShiftPagi  = "pagi"
	ShiftSiang = "siang"
	ShiftMalam = "malam"
)

// DefaultShiftTitles maps the bundled shift names to their display titles
var DefaultShiftTitles = map[string]string{
	ShiftPagi:  "Jadwal Pagi",
	ShiftSiang: "Jadwal Siang",
	ShiftMalam: "Jadwal Malam",
}

// DefaultTimezone is the single local timezone every time of day is resolved in
const DefaultTimezone = "Asia/Jakarta"

// DefaultResetTime is when completion state is cleared each day. 00:01 keeps the
// reset away from exact-midnight catalog entries.
const DefaultResetTime = "00:01"

// MaxLeadMinutes bounds the configurable heads-up lead time
const MaxLeadMinutes = 120

// MaxCallbackDataLen is the largest callback payload Telegram accepts
const MaxCallbackDataLen = 64

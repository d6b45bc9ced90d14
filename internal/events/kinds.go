package events

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is a normalized SABnzbd notification type.
type Kind string

const (
	KindDownload    Kind = "download"
	KindComplete    Kind = "complete"
	KindFailed      Kind = "failed"
	KindError       Kind = "error"
	KindWarning     Kind = "warning"
	KindQueueDone   Kind = "queue_done"
	KindStartup     Kind = "startup"
	KindPauseResume Kind = "pause_resume"
	KindPostProcess Kind = "pp"
	KindDiskFull    Kind = "disk_full"
	KindOther       Kind = "other"
)

const (
	ColorOrange = 0xF39C12
	ColorGreen  = 0x2ECC71
	ColorRed    = 0xE74C3C
	ColorYellow = 0xF1C40F
	ColorBlue   = 0x3498DB

	// DefaultColor is used for kinds missing from the table.
	DefaultColor = ColorBlue
	// InfoEmoji is used for kinds missing from the table.
	InfoEmoji = "ℹ️"
)

// Presentation describes how a kind is rendered in a Discord embed.
type Presentation struct {
	Label string
	Emoji string
	Color int
	// Known is false when the presentation was synthesized for an
	// unrecognized kind.
	Known bool
}

var table = map[Kind]Presentation{
	KindDownload:    {Label: "Added NZB", Emoji: "📥", Color: ColorOrange, Known: true},
	KindComplete:    {Label: "Job finished", Emoji: "✅", Color: ColorGreen, Known: true},
	KindFailed:      {Label: "Job failed", Emoji: "❌", Color: ColorRed, Known: true},
	KindError:       {Label: "Error", Emoji: "🛑", Color: ColorRed, Known: true},
	KindWarning:     {Label: "Warning", Emoji: "⚠️", Color: ColorYellow, Known: true},
	KindQueueDone:   {Label: "Queue finished", Emoji: InfoEmoji, Color: ColorBlue, Known: true},
	KindStartup:     {Label: "Startup/Shutdown", Emoji: InfoEmoji, Color: ColorBlue, Known: true},
	KindPauseResume: {Label: "Pause/Resume", Emoji: "⏸️", Color: ColorBlue, Known: true},
	KindPostProcess: {Label: "Post-processing started", Emoji: "🔧", Color: ColorBlue, Known: true},
	KindDiskFull:    {Label: "Disk full", Emoji: "💥", Color: ColorYellow, Known: true},
	KindOther:       {Label: "Other", Emoji: InfoEmoji, Color: ColorBlue, Known: true},
}

var ordered = []Kind{
	KindDownload,
	KindComplete,
	KindFailed,
	KindError,
	KindWarning,
	KindQueueDone,
	KindStartup,
	KindPauseResume,
	KindPostProcess,
	KindDiskFull,
	KindOther,
}

// Normalize trims and lower-cases a raw type tag.
func Normalize(raw string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(raw)))
}

// Kinds returns the known kinds in table order.
func Kinds() []Kind {
	out := make([]Kind, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup returns the presentation for kind. Unknown kinds get the
// capitalized kind as label, the info emoji, and DefaultColor.
func Lookup(kind Kind) Presentation {
	kind = Normalize(string(kind))
	if p, ok := table[kind]; ok {
		return p
	}
	return Presentation{
		Label: Capitalize(string(kind)),
		Emoji: InfoEmoji,
		Color: DefaultColor,
	}
}

// Capitalize upper-cases the first rune and lower-cases the remainder.
func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(value)
	head := cases.Upper(language.Und).String(value[:size])
	tail := cases.Lower(language.Und).String(value[size:])
	return head + tail
}

package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio   string
	Playing string
	Paused  string
	Stopped string
	Done    string
	Error   string
	Volume  string
	Cursor  string
}

var (
	nerdIcons = Icons{
		Audio:   "\uf001 ", // nf-fa-music
		Playing: "\uf04b",  // nf-fa-play
		Paused:  "\uf04c",  // nf-fa-pause
		Stopped: "\uf04d",  // nf-fa-stop
		Done:    "\uf00c",  // nf-fa-check
		Error:   "\uf071",  // nf-fa-warning
		Volume:  "\uf028",  // nf-fa-volume_up
		Cursor:  "\uf054",  // nf-fa-chevron_right
	}

	unicodeIcons = Icons{
		Audio:   "♪ ",
		Playing: "▶",
		Paused:  "⏸",
		Stopped: "■",
		Done:    "✓",
		Error:   "⚠",
		Volume:  "🔊",
		Cursor:  "›",
	}

	noneIcons = Icons{
		Audio:   "",
		Playing: ">",
		Paused:  "||",
		Stopped: "[]",
		Done:    "--",
		Error:   "!!",
		Volume:  "Vol",
		Cursor:  ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats an audio file name with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

// Playing returns the playing indicator.
func Playing() string { return current.Playing }

// Paused returns the paused indicator.
func Paused() string { return current.Paused }

// Stopped returns the stopped indicator.
func Stopped() string { return current.Stopped }

// Done returns the finished indicator.
func Done() string { return current.Done }

// Error returns the error indicator.
func Error() string { return current.Error }

// Volume returns the volume label.
func Volume() string { return current.Volume }

// Cursor returns the list cursor marker.
func Cursor() string { return current.Cursor }

package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCalendar = "📅"
	IconGap      = "◎"
	IconDuration = "↓"
	IconWarning  = "⚠"
	IconCopy     = "📋"
)

// Text fragments
const (
	DashPlaceholder = "—"
	ReportSeparator = "\t"
)

// Layout sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
	LogoSize             float32 = 32
)

// Layout proportions
const (
	RangeRowColumns     = 5
	TimelineSplitOffset = 0.25
)

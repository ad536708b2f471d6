package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorPurple = lipgloss.AdaptiveColor{Light: "91", Dark: "135"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Board styles.
var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	taskTodoStyle       = lipgloss.NewStyle().Foreground(colorDim)
	taskInProgressStyle = lipgloss.NewStyle().Foreground(colorCyan)
	taskInReviewStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	taskDoneStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	taskCancelledStyle  = lipgloss.NewStyle().Foreground(colorRed)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Log group styles.
var (
	groupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	groupCollapsedStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	logStdoutStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	logStderrStyle     = lipgloss.NewStyle().Foreground(colorRed)
	logNormalizedStyle = lipgloss.NewStyle().Foreground(colorCyan)
)

// Process status badge styles.
var (
	statusRunningStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	statusCompletedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	statusFailedStyle    = lipgloss.NewStyle().Foreground(colorRed)
	statusKilledStyle    = lipgloss.NewStyle().Foreground(colorOrange)
	droppedStyle         = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	overlayWarnStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

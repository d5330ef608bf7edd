package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	corev1 "k8s.io/api/core/v1"
)

// RuleWidth is the width of the horizontal rules between sections
const RuleWidth = 100

// Color palette
var (
	colorPrimary = lipgloss.Color("#7D56F4") // Purple
	colorAccent  = lipgloss.Color("#00D9FF") // Cyan

	// Status colors
	colorSuccess = lipgloss.Color("#00D787") // Green
	colorWarning = lipgloss.Color("#FFB86C") // Orange
	colorError   = lipgloss.Color("#FF5555") // Red
	colorInfo    = lipgloss.Color("#8BE9FD") // Cyan
	colorDone    = lipgloss.Color("#6C9EF8") // Blue

	colorTextDim = lipgloss.Color("#6272A4") // Gray
	colorBgAlt   = lipgloss.Color("#21222C") // Dark
)

// Style definitions
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	contextStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Message tags
	infoTagStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	noticeTagStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	successTagStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	nameStyle      = lipgloss.NewStyle().Bold(true)
	podNameStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	namespaceStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	highlightStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// Pod phases
	phaseRunningStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	phasePendingStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	phaseFailedStyle    = lipgloss.NewStyle().Foreground(colorError)
	phaseSucceededStyle = lipgloss.NewStyle().Foreground(colorDone)

	// Picker
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(colorBgAlt).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 1)
)

// colorEnabled mirrors the last SetColorEnabled call
var colorEnabled = true

// SetColorEnabled switches ANSI styling on or off for everything rendered by
// this package
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// RenderTitle renders a section title with the active context, if known
func RenderTitle(title, context string) string {
	left := titleStyle.Render(title)
	if context == "" {
		return left
	}
	return left + " " + contextStyle.Render("[context: "+context+"]")
}

// RenderRule renders the separator printed under titles and headers
func RenderRule() string {
	return strings.Repeat("-", RuleWidth)
}

// RenderInfo renders an informational message
func RenderInfo(msg string) string {
	return infoTagStyle.Render("[INFO]") + " " + msg
}

// RenderNotice renders an informational message the user should not miss
func RenderNotice(msg string) string {
	return noticeTagStyle.Render("[INFO]") + " " + msg
}

// RenderWarning renders a warning message
func RenderWarning(msg string) string {
	return noticeTagStyle.Render("[WARN]") + " " + msg
}

// RenderSuccess renders a success message
func RenderSuccess(msg string) string {
	return successTagStyle.Render("[SUCCESS]") + " " + msg
}

// FprintError writes an error message to w. Colors follow the terminal
// behind w rather than stdout, and are off when disabled with SetColorEnabled.
func FprintError(w io.Writer, msg string) {
	r := lipgloss.NewRenderer(w)
	if !colorEnabled {
		r.SetColorProfile(termenv.Ascii)
	}
	fmt.Fprintln(w, r.NewStyle().Foreground(colorError).Render("[ERROR]")+" "+msg)
}

// ColorEnabled reports whether ANSI styling is on
func ColorEnabled() bool {
	return colorEnabled
}

// RenderName renders an emphasized resource name
func RenderName(name string) string {
	return nameStyle.Render(name)
}

// RenderPodName renders a pod name in listings
func RenderPodName(name string) string {
	return podNameStyle.Render(name)
}

// RenderNamespace renders a namespace in a dimmed color
func RenderNamespace(ns string) string {
	return namespaceStyle.Render(ns)
}

// RenderHighlight renders user-supplied values such as commands and images
func RenderHighlight(s string) string {
	return highlightStyle.Render(s)
}

// RenderPhase colors a pod phase by health
func RenderPhase(phase corev1.PodPhase) string {
	s := string(phase)
	switch phase {
	case corev1.PodRunning:
		return phaseRunningStyle.Render(s)
	case corev1.PodPending:
		return phasePendingStyle.Render(s)
	case corev1.PodFailed:
		return phaseFailedStyle.Render(s)
	case corev1.PodSucceeded:
		return phaseSucceededStyle.Render(s)
	default:
		return s
	}
}

// RenderTarget renders "NAME (namespace: NS)"
func RenderTarget(name, namespace string) string {
	return RenderName(name) + " (namespace: " + RenderNamespace(namespace) + ")"
}

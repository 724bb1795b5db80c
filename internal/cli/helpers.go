package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParseDate reads YYYY-MM-DD, or an RFC 3339 timestamp, in loc. Date-only
// values land on local noon so the calendar day survives any UTC offset.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid date '%s' (use YYYY-MM-DD)", s)
}

// ParseMonth reads YYYY-MM into the 1st of that month in loc
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01", strings.TrimSpace(s), loc); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, loc), nil
	}
	return ParseDate(s, loc)
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// TerminalWidth returns the width of the terminal on stdout, or fallback
// when stdout is not a terminal
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return fallback
}

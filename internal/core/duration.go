package core

import "fmt"

// FormatDuration renders milliseconds as MM:SS.mmm. Minutes are not capped
// at 59.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}

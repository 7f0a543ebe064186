package booking

import (
	"fmt"
	"time"
)

// FormatDate renders t as "YYYY:MM:DD:HH" using local calendar fields.
// Minutes and seconds are discarded, so two instants within the same
// hour format identically; conflict messages tolerate that loss.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d:%02d:%02d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour())
}

package utils

import (
	"time"

	"github.com/goodsign/monday"
)

// dueDateLayout renders 2025/06/01(日): 4-digit year, zero-padded month and
// day, abbreviated weekday.
const dueDateLayout = "2006/01/02(Mon)"

// FormatDueDate renders a due date in Japanese locale long form.
func FormatDueDate(date time.Time) string {
	return monday.Format(date, dueDateLayout, monday.LocaleJaJP)
}

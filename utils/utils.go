package utils

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// PostedThisWeek reports whether t falls in the current calendar week, used
// for the "new" badge on blog posts and courses.
func PostedThisWeek(t time.Time) bool {
	return !t.Before(now.BeginningOfWeek())
}

// FormatDuration renders a course duration in minutes as "3h 20m".
func FormatDuration(minutes int64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatPrice renders a course price, with free courses called out.
func FormatPrice(price float64) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", price)
}

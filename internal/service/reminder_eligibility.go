package service

import (
	"time"

	"quiz-forge/internal/domain"
)

// Range of whole-hour UTC offsets in use.
const (
	MinOffsetHours = -12
	MaxOffsetHours = 14
)

const dateLayout = "2006-01-02"

// TargetOffsets returns the offsets whose local hour is localHour at nowUTC,
// in ascending order.
func TargetOffsets(nowUTC time.Time, localHour int) []int {
	utcHour := nowUTC.UTC().Hour()
	var offsets []int
	for off := MinOffsetHours; off <= MaxOffsetHours; off++ {
		if (utcHour+off+24)%24 == localHour {
			offsets = append(offsets, off)
		}
	}
	return offsets
}

// LocalDate formats t as a calendar date at the fixed offset.
func LocalDate(t time.Time, offsetHours int) string {
	return t.In(time.FixedZone("", offsetHours*3600)).Format(dateLayout)
}

// IsStreakSavable reports whether the user last played on their local
// yesterday, so the streak is still alive but breaks at local midnight.
func IsStreakSavable(u *domain.UserStats, nowUTC time.Time) bool {
	if u == nil || u.LastPlayedAt == nil {
		return false
	}
	today := LocalDate(nowUTC, u.TimezoneOffsetHours)
	yesterday := LocalDate(nowUTC.Add(-24*time.Hour), u.TimezoneOffsetHours)
	lastPlayed := LocalDate(*u.LastPlayedAt, u.TimezoneOffsetHours)
	return lastPlayed == yesterday && lastPlayed != today
}

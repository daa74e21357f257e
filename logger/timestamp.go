package logger

import "fmt"

var monthDays = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int64) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// civilTime holds the calendar fields of an offset-adjusted instant.
type civilTime struct {
	year, month, day     int64
	hour, minute, second int64
}

// decompose converts offset-adjusted Unix seconds into civil calendar
// fields using proleptic Gregorian rules. Defined for instants at or
// after the epoch.
func decompose(secs int64) civilTime {
	ct := civilTime{
		second: secs % 60,
		minute: (secs / 60) % 60,
		hour:   (secs / 3600) % 24,
	}

	days := secs / 86400
	year := int64(1970)
	for days > 0 {
		daysInYear := int64(365)
		if isLeapYear(year) {
			daysInYear = 366
		}
		if days < daysInYear {
			break
		}
		days -= daysInYear
		year++
	}

	day := days + 1
	month := 0
	for month < 12 {
		daysInMonth := monthDays[month]
		if month == 1 && isLeapYear(year) {
			daysInMonth = 29
		}
		if day <= daysInMonth {
			break
		}
		day -= daysInMonth
		month++
	}

	ct.year = year
	ct.month = int64(month + 1)
	ct.day = day
	return ct
}

// formatLine renders one newline-terminated log line:
// [DD/MM/YYYY HH:MM:SS.mmm][LEVEL] message
func formatLine(secs int64, millis int, level Level, message string) string {
	ct := decompose(secs)
	return fmt.Sprintf("[%02d/%02d/%04d %02d:%02d:%02d.%03d][%s] %s\n",
		ct.day, ct.month, ct.year, ct.hour, ct.minute, ct.second, millis, level.String(), message)
}

package utils

import (
	"strconv"
	"strings"
	"time"
)

// FormatDoctorName adds the "Dr." prefix unless the name already has it.
func FormatDoctorName(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(name), "dr.") {
		return name
	}
	return "Dr. " + name
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// FormatDate renders a backend date as "Jan 2, 2006". Dates in MM-DD-YYYY form
// are accepted too; anything unparseable is returned unchanged.
func FormatDate(date string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}

	parts := strings.Split(date, "-")
	if len(parts) == 3 {
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		year, errY := strconv.Atoi(parts[2])
		if errM == nil && errD == nil && errY == nil && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("Jan 2, 2006")
		}
	}
	return date
}

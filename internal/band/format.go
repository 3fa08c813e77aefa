package band

import "fmt"

const minutesPerDay = 24 * 60

// FormatMinutes renders a minute count as a 24 hour HH:MM clock time.
// Values wrap modulo one day in both directions.
func FormatMinutes(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

var activityLabels = map[int]string{
	1: "slow walking",
	3: "fast walking",
	4: "running",
	7: "light activity",
}

var stageLabels = map[int]string{
	4: "light sleep",
	5: "deep sleep",
}

func ActivityLabel(mode int) string {
	if label, ok := activityLabels[mode]; ok {
		return label
	}
	return fmt.Sprintf("Unknown activity type: %d", mode)
}

func StageLabel(mode int) string {
	if label, ok := stageLabels[mode]; ok {
		return label
	}
	return fmt.Sprintf("Unknown sleep type: %d", mode)
}

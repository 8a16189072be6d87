package consts

const (
	ScheduleDaily   = "daily"
	ScheduleWeekly  = "weekly"
	ScheduleMonthly = "monthly"
)

// DateLayout is the wire format for all dates crossing the HTTP boundary.
const DateLayout = "2006-01-02"

// MonthLayout keys area cost documents.
const MonthLayout = "2006-01"

func IsValidScheduleKind(kind string) bool {
	switch kind {
	case ScheduleDaily, ScheduleWeekly, ScheduleMonthly:
		return true
	}
	return false
}

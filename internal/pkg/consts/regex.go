package consts

const (
	ObjectIDRegexStr     = `^[0-9a-fA-F]{24}$`
	DateRegexStr         = `^[0-9]{4}-[0-9]{2}-[0-9]{2}$`
	MonthRegexStr        = `^[0-9]{4}-[0-9]{2}$`
	ValidSerialNumberStr = `^[a-zA-Z0-9-]+$`
)

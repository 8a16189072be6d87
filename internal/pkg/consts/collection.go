package consts

const (
	LoansCollection           = "Loans"
	PaymentsCollection        = "Payments"
	AreasCollection           = "Areas"
	AreaCostsCollection       = "AreaCosts"
	BatchInProgressCollection = "BatchPostingsInProgress"
)

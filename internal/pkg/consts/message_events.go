package consts

const (
	PaymentCommitted        = "PAYMENT_COMMITTED"
	PaymentDeleted          = "PAYMENT_DELETED"
	PenaltyAccrued          = "PENALTY_ACCRUED"
	BatchPostingCommitted   = "BATCH_POSTING_COMMITTED"
	BatchPostingRolledBack  = "BATCH_POSTING_ROLLED_BACK"
	LoanFullySettled        = "LOAN_FULLY_SETTLED"
	ReceiptNotificationSent = "ReceiptNotificationSent"
)

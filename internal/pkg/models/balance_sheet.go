package models

import "time"

// Ind-AS shaped balance sheet for one loan as of a report date, from the
// financier's perspective.

type CurrentAssets struct {
	Cash               float64 `json:"cash"`
	Receivables        float64 `json:"receivables"`
	OtherCurrentAssets float64 `json:"otherCurrentAssets"`
	TotalCurrentAssets float64 `json:"totalCurrentAssets"`
}

type FixedAssets struct {
	Investments      float64 `json:"investments"`
	OtherFixedAssets float64 `json:"otherFixedAssets"`
	TotalFixedAssets float64 `json:"totalFixedAssets"`
}

type Assets struct {
	CurrentAssets CurrentAssets `json:"currentAssets"`
	FixedAssets   FixedAssets   `json:"fixedAssets"`
	TotalAssets   float64       `json:"totalAssets"`
}

type CurrentLiabilities struct {
	ShortTermLoans          float64 `json:"shortTermLoans"`
	Payables                float64 `json:"payables"`
	AccruedInterest         float64 `json:"accruedInterest"`
	AccruedExpenses         float64 `json:"accruedExpenses"`
	TotalCurrentLiabilities float64 `json:"totalCurrentLiabilities"`
}

type LongTermLiabilities struct {
	LongTermLoans            float64 `json:"longTermLoans"`
	OtherLongTermLiabilities float64 `json:"otherLongTermLiabilities"`
	TotalLongTermLiabilities float64 `json:"totalLongTermLiabilities"`
}

type Liabilities struct {
	CurrentLiabilities  CurrentLiabilities  `json:"currentLiabilities"`
	LongTermLiabilities LongTermLiabilities `json:"longTermLiabilities"`
	TotalLiabilities    float64             `json:"totalLiabilities"`
}

type Equity struct {
	PaidUpCapital      float64 `json:"paidUpCapital"`
	RetainedEarnings   float64 `json:"retainedEarnings"`
	ReservesAndSurplus float64 `json:"reservesAndSurplus"`
	TotalEquity        float64 `json:"totalEquity"`
}

type TransactionSummary struct {
	TotalBorrowed      float64 `json:"totalBorrowed"`
	TotalRepaid        float64 `json:"totalRepaid"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	AccruedInterest    float64 `json:"accruedInterest"`
	PaidInterest       float64 `json:"paidInterest"`
}

type BalanceSheetData struct {
	CustomerName       string             `json:"customerName"`
	SerialNumber       string             `json:"serialNumber"`
	ReportDate         time.Time          `json:"reportDate"`
	Assets             Assets             `json:"assets"`
	Liabilities        Liabilities        `json:"liabilities"`
	Equity             Equity             `json:"equity"`
	TransactionSummary TransactionSummary `json:"transactionSummary"`
}

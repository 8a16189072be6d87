package app

import (
	"context"
)

type LedgerEventRetryService interface {
	RetryLedgerEventMessages(context.Context) ([]string, []string, error)
}

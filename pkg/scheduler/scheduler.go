package scheduler

import (
	"context"

	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/chris/amc-warranty-claims/pkg/wallet"
)

// Scheduler defines the interface for a component that defers vendor earnings to a worker.
type Scheduler interface {
	// ScheduleEarning enqueues an earning for asynchronous posting.
	ScheduleEarning(ctx context.Context, req wallet.EarningRequest) (models.EarningStatus, error)
}

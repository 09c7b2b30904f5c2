package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads order status straight from the orders table,
// bypassing the aggregate.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var row struct {
		Status          int
		FailureMessages pq.StringArray
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().UUID().Raw()).Scan(&row)
	if result.Error != nil {
		return TrackOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order tracking id", query.TrackingID().String())
	}

	status := order.Status(row.Status)
	if err := status.Validate(); err != nil {
		return TrackOrderQueryResponse{}, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	messages := []string(row.FailureMessages)
	if messages == nil {
		messages = []string{}
	}

	return TrackOrderQueryResponse{
		TrackingID:      query.TrackingID(),
		Status:          status.String(),
		FailureMessages: messages,
	}, nil
}

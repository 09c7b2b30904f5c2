package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up an order by the tracking id handed to the client.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", status.TrackingID, status.Status)
type TrackOrderQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(trackingID kernel.TrackingID) (TrackOrderQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackOrderQueryResponse is what a client sees of an order: never the
// internal order id.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.TrackingID
	Status          string
	FailureMessages []string
}

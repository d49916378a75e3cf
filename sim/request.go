// Defines the Request struct that models a single named-content request in the simulation.
// A Request is a value: once built by NewRequest it is never mutated, only copied.

package sim

import (
	"fmt"
)

// RequestState represents the lifecycle state of a request.
//
//	issued → served_immediately                (cache hit)
//	issued → queued → served                    (cache miss, deferred fetch)
//
// No request ever returns to an earlier state.
type RequestState string

const (
	StateIssued            RequestState = "issued"
	StateServedImmediately RequestState = "served_immediately"
	StateQueued            RequestState = "queued"
	StateServed            RequestState = "served"
)

// Request is a client's named request for a piece of content.
type Request struct {
	UserID      string // Identifier of the issuing user
	ContentName string // Name of the requested content
	IssueTick   int64  // Tick at which the request was issued
}

// NewRequest creates a Request issued by userID for contentName at issueTick.
func NewRequest(userID, contentName string, issueTick int64) Request {
	return Request{
		UserID:      userID,
		ContentName: contentName,
		IssueTick:   issueTick,
	}
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request: (User: %s, Content: %s, IssueTick: %d)", req.UserID, req.ContentName, req.IssueTick)
}

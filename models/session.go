package models

import "time"

// EnquirySession is the server-side state of one booking enquiry. Sessions
// live in Redis with a short TTL; abandoning the form simply lets the
// session expire.
type EnquirySession struct {
	ID        string      `json:"id"`
	Stay      StayRequest `json:"stay"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

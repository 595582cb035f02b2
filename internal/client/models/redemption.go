package models

import (
	"encoding/json"
	"time"
)

// Status of a redemption outcome.
type Status string

const (
	StatusRedeemed   Status = "redeemed"
	StatusError      Status = "error"
	StatusIncomplete Status = "incomplete"
)

// Reason explains an error status.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonInvalid         Reason = "invalid"
	ReasonRevoked         Reason = "revoked"
	ReasonProduct         Reason = "product"
	ReasonRule            Reason = "rules"
	ReasonUnpaid          Reason = "unpaid"
	ReasonCanceled        Reason = "canceled"
	ReasonInvalidTime     Reason = "invalid_time"
	ReasonAlreadyRedeemed Reason = "already_redeemed"
	ReasonError           Reason = "error"
)

// Answer is a check-in question answer forwarded with a redemption.
type Answer struct {
	QuestionID int64  `json:"question"`
	Value      string `json:"answer"`
}

// RedemptionRequest is what the scanner asks the authority to record.
type RedemptionRequest struct {
	Secret       string
	Nonce        string
	Type         string
	Date         time.Time
	Force        bool
	IgnoreUnpaid bool
	Answers      []Answer
}

// QueuedRedemptionRequest is a locally admitted redemption awaiting upload.
type QueuedRedemptionRequest struct {
	ID        int64
	EventSlug string
	ListID    int64
	Request   RedemptionRequest
}

// AnswersJSON encodes answers for storage; nil answers encode as "[]".
func (q *QueuedRedemptionRequest) AnswersJSON() ([]byte, error) {
	if q.Request.Answers == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(q.Request.Answers)
}

// RedemptionResponse is the authority's verdict for one upload.
type RedemptionResponse struct {
	Status Status
	Reason Reason
}

package schema

import (
	"encoding/json"
	"time"
)

// SubmissionAccepted is the wire form of a relayed submission notification.
// Downstream consumers (analytics, the account dashboard) key on ProfileID.
type SubmissionAccepted struct {
	ProfileID    int64     `json:"profile_id"`
	Slug         string    `json:"slug"`
	MonthlyCount uint32    `json:"monthly_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (s *SubmissionAccepted) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *SubmissionAccepted) Unmarshal(data []byte) error {
	return json.Unmarshal(data, s)
}

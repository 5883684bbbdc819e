package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EstimateStatus represents the status of an estimate
type EstimateStatus int

const (
	EstimateStatusDraft       EstimateStatus = 0
	EstimateStatusSubmitted   EstimateStatus = 1
	EstimateStatusApproved    EstimateStatus = 2
	EstimateStatusNeedsUpdate EstimateStatus = 3
	EstimateStatusDeclined    EstimateStatus = 4
)

func (s EstimateStatus) String() string {
	return [...]string{"Draft", "Submitted", "Approved", "NeedsUpdate", "Declined"}[s]
}

func (s EstimateStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EstimateStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EstimateStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = EstimateStatusDraft
	case "Submitted":
		*s = EstimateStatusSubmitted
	case "Approved":
		*s = EstimateStatusApproved
	case "NeedsUpdate":
		*s = EstimateStatusNeedsUpdate
	case "Declined":
		*s = EstimateStatusDeclined
	}
	return nil
}

// ParseEstimateStatus converts a status name into its enum value
func ParseEstimateStatus(raw string) (EstimateStatus, error) {
	switch raw {
	case "Draft":
		return EstimateStatusDraft, nil
	case "Submitted":
		return EstimateStatusSubmitted, nil
	case "Approved":
		return EstimateStatusApproved, nil
	case "NeedsUpdate":
		return EstimateStatusNeedsUpdate, nil
	case "Declined":
		return EstimateStatusDeclined, nil
	}
	return EstimateStatusDraft, fmt.Errorf("unknown estimate status: %q", raw)
}

func (s EstimateStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EstimateStatus) Scan(value interface{}) error {
	if value == nil {
		*s = EstimateStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EstimateStatus(v)
	case int:
		*s = EstimateStatus(v)
	}
	return nil
}

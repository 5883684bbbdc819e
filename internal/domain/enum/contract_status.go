package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ContractStatus represents the status of a contract
type ContractStatus int

const (
	ContractStatusDraft    ContractStatus = 0
	ContractStatusSent     ContractStatus = 1
	ContractStatusSigned   ContractStatus = 2
	ContractStatusDeclined ContractStatus = 3
)

func (s ContractStatus) String() string {
	return [...]string{"Draft", "Sent", "Signed", "Declined"}[s]
}

func (s ContractStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ContractStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ContractStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = ContractStatusDraft
	case "Sent":
		*s = ContractStatusSent
	case "Signed":
		*s = ContractStatusSigned
	case "Declined":
		*s = ContractStatusDeclined
	}
	return nil
}

// ParseContractStatus converts a status name into its enum value
func ParseContractStatus(raw string) (ContractStatus, error) {
	switch raw {
	case "Draft":
		return ContractStatusDraft, nil
	case "Sent":
		return ContractStatusSent, nil
	case "Signed":
		return ContractStatusSigned, nil
	case "Declined":
		return ContractStatusDeclined, nil
	}
	return ContractStatusDraft, fmt.Errorf("unknown contract status: %q", raw)
}

func (s ContractStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ContractStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ContractStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ContractStatus(v)
	case int:
		*s = ContractStatus(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft     InvoiceStatus = 0
	InvoiceStatusSubmitted InvoiceStatus = 1
	InvoiceStatusPaid      InvoiceStatus = 2
	InvoiceStatusOverdue   InvoiceStatus = 3
	InvoiceStatusCanceled  InvoiceStatus = 4
)

func (s InvoiceStatus) String() string {
	return [...]string{"Draft", "Submitted", "Paid", "Overdue", "Canceled"}[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = InvoiceStatusDraft
	case "Submitted":
		*s = InvoiceStatusSubmitted
	case "Paid":
		*s = InvoiceStatusPaid
	case "Overdue":
		*s = InvoiceStatusOverdue
	case "Canceled":
		*s = InvoiceStatusCanceled
	}
	return nil
}

// ParseInvoiceStatus converts a status name into its enum value
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch raw {
	case "Draft":
		return InvoiceStatusDraft, nil
	case "Submitted":
		return InvoiceStatusSubmitted, nil
	case "Paid":
		return InvoiceStatusPaid, nil
	case "Overdue":
		return InvoiceStatusOverdue, nil
	case "Canceled":
		return InvoiceStatusCanceled, nil
	}
	return InvoiceStatusDraft, fmt.Errorf("unknown invoice status: %q", raw)
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}

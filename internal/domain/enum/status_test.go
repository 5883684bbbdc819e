package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstimateStatus(t *testing.T) {
	status, err := ParseEstimateStatus("NeedsUpdate")
	require.NoError(t, err)
	assert.Equal(t, EstimateStatusNeedsUpdate, status)

	_, err = ParseEstimateStatus("needsupdate")
	assert.Error(t, err, "status names are case sensitive")

	_, err = ParseEstimateStatus("")
	assert.Error(t, err)
}

func TestParseInvoiceStatus(t *testing.T) {
	status, err := ParseInvoiceStatus("Overdue")
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusOverdue, status)

	_, err = ParseInvoiceStatus("Deleted")
	assert.Error(t, err)
}

func TestParseContractStatus(t *testing.T) {
	status, err := ParseContractStatus("Signed")
	require.NoError(t, err)
	assert.Equal(t, ContractStatusSigned, status)

	_, err = ParseContractStatus("Open")
	assert.Error(t, err)
}

func TestEstimateStatusJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(EstimateStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, `"Approved"`, string(data))

	var status EstimateStatus
	require.NoError(t, json.Unmarshal([]byte(`"Declined"`), &status))
	assert.Equal(t, EstimateStatusDeclined, status)

	// Integer form is accepted for clients that stored the raw value
	require.NoError(t, json.Unmarshal([]byte(`1`), &status))
	assert.Equal(t, EstimateStatusSubmitted, status)
}

func TestParseDocumentType(t *testing.T) {
	for _, raw := range []string{"estimate", "invoice", "contract"} {
		docType, err := ParseDocumentType(raw)
		require.NoError(t, err)
		assert.Equal(t, DocumentType(raw), docType)
	}

	_, err := ParseDocumentType("receipt")
	assert.Error(t, err)
}

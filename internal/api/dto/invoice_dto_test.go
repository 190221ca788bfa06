package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invyfy/invyfy-api/internal/domain"
)

func TestCreateInvoiceRequest_Validate(t *testing.T) {
	t.Parallel()

	projectID := "8b9e8a48-9f6e-4f69-a07e-0e2499d79b33"

	tests := []struct {
		name       string
		req        CreateInvoiceRequest
		wantFields []string
	}{
		{
			name: "valid minimal",
			req:  CreateInvoiceRequest{ClientName: "Acme", Amount: 100, DueDate: "2025-01-01"},
		},
		{
			name: "valid with project",
			req:  CreateInvoiceRequest{ProjectID: &projectID, ClientName: "Acme", Amount: 100, DueDate: "2025-01-01", Status: "paid"},
		},
		{
			name:       "bad project id",
			req:        CreateInvoiceRequest{ProjectID: strPtr("nope"), ClientName: "Acme", Amount: 100, DueDate: "2025-01-01"},
			wantFields: []string{"projectId"},
		},
		{
			name:       "zero amount",
			req:        CreateInvoiceRequest{ClientName: "Acme", Amount: 0, DueDate: "2025-01-01"},
			wantFields: []string{"amount"},
		},
		{
			name:       "amount over ceiling",
			req:        CreateInvoiceRequest{ClientName: "Acme", Amount: 1000000000, DueDate: "2025-01-01"},
			wantFields: []string{"amount"},
		},
		{
			name:       "bad date format",
			req:        CreateInvoiceRequest{ClientName: "Acme", Amount: 100, DueDate: "01/01/2025"},
			wantFields: []string{"dueDate"},
		},
		{
			name:       "not a calendar date",
			req:        CreateInvoiceRequest{ClientName: "Acme", Amount: 100, DueDate: "2025-02-30"},
			wantFields: []string{"dueDate"},
		},
		{
			name:       "unknown status",
			req:        CreateInvoiceRequest{ClientName: "Acme", Amount: 100, DueDate: "2025-01-01", Status: "cancelled"},
			wantFields: []string{"status"},
		},
		{
			name:       "missing client name",
			req:        CreateInvoiceRequest{Amount: 100, DueDate: "2025-01-01"},
			wantFields: []string{"clientName"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := tt.req.Validate()
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fieldsOrNil(fields))
		})
	}
}

func TestCreateInvoiceRequest_StatusOrDefault(t *testing.T) {
	t.Parallel()

	req := CreateInvoiceRequest{ClientName: "Acme", Amount: 100, DueDate: "2025-01-01"}
	assert.Equal(t, domain.InvoiceStatusPending, req.StatusOrDefault())

	req.Status = "overdue"
	assert.Equal(t, domain.InvoiceStatusOverdue, req.StatusOrDefault())
}

func TestUpdateInvoiceRequest_EmptyPayloadRejected(t *testing.T) {
	t.Parallel()

	var req UpdateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "At least one field must be provided for update", errs[0].Message)
}

func TestUpdateInvoiceRequest_ProjectIDTriState(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		var req UpdateInvoiceRequest
		require.NoError(t, json.Unmarshal([]byte(`{"status":"paid"}`), &req))
		assert.False(t, req.ProjectID.Set)
		assert.Empty(t, req.Validate())
	})

	t.Run("explicit null clears", func(t *testing.T) {
		t.Parallel()
		var req UpdateInvoiceRequest
		require.NoError(t, json.Unmarshal([]byte(`{"projectId":null}`), &req))
		assert.True(t, req.ProjectID.Set)
		assert.Nil(t, req.ProjectID.Value)
		assert.Empty(t, req.Validate())
	})

	t.Run("set to value", func(t *testing.T) {
		t.Parallel()
		var req UpdateInvoiceRequest
		require.NoError(t, json.Unmarshal([]byte(`{"projectId":"8b9e8a48-9f6e-4f69-a07e-0e2499d79b33"}`), &req))
		assert.True(t, req.ProjectID.Set)
		require.NotNil(t, req.ProjectID.Value)
		assert.Empty(t, req.Validate())
	})

	t.Run("set to invalid value", func(t *testing.T) {
		t.Parallel()
		var req UpdateInvoiceRequest
		require.NoError(t, json.Unmarshal([]byte(`{"projectId":"nope"}`), &req))
		errs := req.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "projectId", errs[0].Field)
	})
}

func strPtr(s string) *string {
	return &s
}

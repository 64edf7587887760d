package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuditLogDetailsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "audited@example.com")

	entry := &AuditLog{
		UserID:       &u.ID,
		Action:       AuditPayment,
		IPAddress:    "203.0.113.7",
		UserAgent:    "loadtest/1.0",
		ResourceType: "order",
		ResourceID:   "42",
		Details: map[string]any{
			"order_no": "ORD-CAFEBABE",
			"amount":   "19.99",
		},
	}
	require.NoError(t, db.Create(entry).Error)

	var got AuditLog
	require.NoError(t, db.First(&got, entry.ID).Error)
	require.Equal(t, AuditPayment, got.Action)
	require.Equal(t, "ORD-CAFEBABE", got.Details["order_no"])
	require.Equal(t, "19.99", got.Details["amount"])
}

func TestAuditLogNilUser(t *testing.T) {
	db := newTestDB(t)

	entry := &AuditLog{Action: AuditLogin, IPAddress: "198.51.100.9"}
	require.NoError(t, db.Create(entry).Error)

	var got AuditLog
	require.NoError(t, db.First(&got, entry.ID).Error)
	require.Nil(t, got.UserID)
}

func TestAuditActionValid(t *testing.T) {
	require.True(t, AuditDownload.Valid())
	require.False(t, AuditAction("purge").Valid())
}

func TestTransactionTypeValid(t *testing.T) {
	require.True(t, TransactionRefund.Valid())
	require.False(t, TransactionType("chargeback").Valid())
}

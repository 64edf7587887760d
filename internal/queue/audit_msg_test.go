package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/internal/model"
)

func TestAuditMessageValidate(t *testing.T) {
	now := time.Now()
	valid := AuditMessage{EventID: "evt-1", Action: "payment", OccurredAt: now}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		msg  AuditMessage
	}{
		{"missing event id", AuditMessage{Action: "payment", OccurredAt: now}},
		{"unknown action", AuditMessage{EventID: "evt-2", Action: "purge", OccurredAt: now}},
		{"missing timestamp", AuditMessage{EventID: "evt-3", Action: "payment"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Error(t, c.msg.Validate())
		})
	}
}

func TestAuditMessageRecord(t *testing.T) {
	uid := uint(7)
	occurred := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m := AuditMessage{
		EventID:      "evt-9",
		UserID:       &uid,
		Action:       "download",
		IPAddress:    "203.0.113.7",
		ResourceType: "product",
		ResourceID:   "42",
		Details:      map[string]any{"slug": "ebook-go"},
		OccurredAt:   occurred,
	}

	rec := m.Record()
	require.Equal(t, model.AuditDownload, rec.Action)
	require.Equal(t, &uid, rec.UserID)
	require.Equal(t, occurred, rec.CreatedAt)
	require.Equal(t, "product", rec.ResourceType)
	require.Equal(t, "ebook-go", rec.Details["slug"])
}

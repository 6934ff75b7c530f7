package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookData_EventID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string id", body: `{"type":"payment","data":{"id":"123"}}`, want: "123"},
		{name: "numeric id", body: `{"type":"payment","data":{"id":456}}`, want: "456"},
		{name: "missing data", body: `{"type":"payment"}`, want: ""},
		{name: "missing id", body: `{"type":"payment","data":{}}`, want: ""},
		{name: "null id", body: `{"type":"payment","data":{"id":null}}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var evt WebhookEvent
			assert.NoError(t, json.Unmarshal([]byte(tt.body), &evt))
			assert.Equal(t, "payment", evt.Type)
			assert.Equal(t, tt.want, evt.Data.EventID())
		})
	}
}

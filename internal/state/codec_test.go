package state

import (
	"encoding/json"
	"testing"

	"github.com/mmynk/agencydesk/internal/storage"
)

func TestRoundNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1234.5", "1235"},
		{"1234.49", "1234"},
		{"-2.5", "-3"},
		{"104166.66666666667", "104167"},
		{"450000", "450000"},
		{"1e3", "1000"},
	}
	for _, tt := range tests {
		if got := roundNumber(json.Number(tt.in)); string(got) != tt.want {
			t.Errorf("roundNumber(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestUpgradeLegacy(t *testing.T) {
	tests := []struct {
		name string
		key  storage.Key
		in   string
		want string
	}{
		{
			name: "numeric ids and fractional money",
			key:  storage.KeyServices,
			in:   `[{"id":1,"name":"Web","hours":1.5,"margin":33.3,"price":99.5}]`,
			want: `[{"hours":1.5,"id":"1","margin":33.3,"name":"Web","price":100}]`,
		},
		{
			name: "nested customer and expiry date",
			key:  storage.KeyQuotes,
			in:   `[{"id":"COT-1","expiryDate":"2024-01-16","customer":{"name":"ACME","rut":"1-9"},"items":[]}]`,
			want: `[{"clientName":"ACME","clientRut":"1-9","id":"COT-1","items":[],"validUntil":"2024-01-16"}]`,
		},
		{
			name: "flat client snapshot wins over customer",
			key:  storage.KeyQuotes,
			in:   `[{"id":"COT-1","clientName":"Nuevo","customer":{"name":"Viejo","rut":""}}]`,
			want: `[{"clientName":"Nuevo","clientRut":"","id":"COT-1"}]`,
		},
		{
			name: "item name from description",
			key:  storage.KeyQuotes,
			in:   `[{"id":"COT-1","items":[{"id":5,"description":"Logo","subDescription":"3 propuestas","quantity":1.5,"price":10}]}]`,
			want: `[{"id":"COT-1","items":[{"description":"3 propuestas","id":"5","name":"Logo","price":10,"quantity":2}]}]`,
		},
		{
			name: "client address",
			key:  storage.KeyClients,
			in:   `[{"id":2,"name":"ACME","address":"Av. Uno 1","lastTotal":1190.4}]`,
			want: `[{"city":"Av. Uno 1","id":"2","lastTotal":1190,"name":"ACME"}]`,
		},
		{
			name: "settings email",
			key:  storage.KeySettings,
			in:   `{"companyName":"Sur","email":"hola@sur.cl"}`,
			want: `{"companyName":"Sur","contactEmail":"hola@sur.cl"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := upgradeLegacy(tt.key, []byte(tt.in))
			if err != nil {
				t.Fatalf("upgradeLegacy failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

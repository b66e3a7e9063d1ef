package state

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/agencydesk/internal/storage"
)

// SchemaVersion is written with every persisted collection.
const SchemaVersion = 1

// legacyVersion marks a bare payload from before versioning: the web app's
// local-storage JSON. upgradeLegacy rewrites it on decode.
const legacyVersion = 0

func encode(key storage.Key, value any) (*storage.Record, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return &storage.Record{Key: key, Version: SchemaVersion, Data: data}, nil
}

func decode(rec *storage.Record, dst any) error {
	data := rec.Data
	switch rec.Version {
	case SchemaVersion:
	case legacyVersion:
		upgraded, err := upgradeLegacy(rec.Key, data)
		if err != nil {
			return fmt.Errorf("failed to upgrade legacy %s: %w", rec.Key, err)
		}
		data = upgraded
	default:
		return fmt.Errorf("unsupported schema version %d for %s", rec.Version, rec.Key)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", rec.Key, err)
	}
	return nil
}

// identifierFields are rewritten from number to string in legacy payloads.
var identifierFields = map[string]bool{
	"id":        true,
	"serviceId": true,
	"clientId":  true,
	"assetId":   true,
}

// integralFields hold whole currency units or counts. The web app stored
// some of them unrounded (a service price is the raw suggested price).
var integralFields = map[string]bool{
	"amount":       true,
	"price":        true,
	"total":        true,
	"initialValue": true,
	"lastTotal":    true,
	"sales":        true,
	"quantity":     true,
}

// upgradeLegacy rewrites a web app payload into the current shape of the
// collection stored under key.
func upgradeLegacy(key storage.Key, data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	doc = upgradeFields(doc)

	switch key {
	case storage.KeyQuotes:
		eachObject(doc, upgradeLegacyQuote)
	case storage.KeyClients:
		eachObject(doc, func(c map[string]any) { rename(c, "address", "city") })
	case storage.KeySettings:
		if m, ok := doc.(map[string]any); ok {
			rename(m, "email", "contactEmail")
		}
	}
	return json.Marshal(doc)
}

func upgradeFields(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, field := range v {
			if n, ok := field.(json.Number); ok {
				switch {
				case identifierFields[k]:
					v[k] = n.String()
				case integralFields[k]:
					v[k] = roundNumber(n)
				}
				continue
			}
			v[k] = upgradeFields(field)
		}
		return v
	case []any:
		for i := range v {
			v[i] = upgradeFields(v[i])
		}
		return v
	}
	return v
}

// roundNumber rounds half away from zero. Numbers that do not parse are
// left for the decoder to reject.
func roundNumber(n json.Number) json.Number {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return n
	}
	return json.Number(d.Round(0).String())
}

// upgradeLegacyQuote flattens the nested customer into the client snapshot,
// renames expiryDate and moves item names out of description. Contact
// fields of the customer live on the client record, which the web app
// upserted on every save.
func upgradeLegacyQuote(q map[string]any) {
	rename(q, "expiryDate", "validUntil")
	if customer, ok := q["customer"].(map[string]any); ok {
		setIfEmpty(q, "clientName", customer["name"])
		setIfEmpty(q, "clientRut", customer["rut"])
		delete(q, "customer")
	}
	if items, ok := q["items"].([]any); ok {
		for _, it := range items {
			item, ok := it.(map[string]any)
			if !ok {
				continue
			}
			if _, hasName := item["name"]; !hasName {
				rename(item, "description", "name")
				rename(item, "subDescription", "description")
			}
		}
	}
}

func eachObject(doc any, fn func(map[string]any)) {
	list, ok := doc.([]any)
	if !ok {
		return
	}
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			fn(m)
		}
	}
}

// rename moves from to to unless to is already set.
func rename(m map[string]any, from, to string) {
	v, ok := m[from]
	if !ok {
		return
	}
	delete(m, from)
	setIfEmpty(m, to, v)
}

func setIfEmpty(m map[string]any, key string, v any) {
	if v == nil {
		return
	}
	if cur, ok := m[key]; ok && cur != nil && cur != "" {
		return
	}
	m[key] = v
}

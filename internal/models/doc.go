// Package models defines the core domain records for agencydesk.
//
// # Records
//
//   - Cost: an expense line in the cost ledger (fixed or variable)
//   - Asset: a purchased asset depreciated straight-line over its useful life
//   - Service: a catalog entry whose price is frozen when it is saved
//   - Client: a customer, keyed for upserts by its RUT
//   - Quote and QuoteItem: a folio with ordered line items and a client snapshot
//   - Settings: the company profile singleton (capacity feeds the BEP rate)
//   - TermTemplate: reusable terms text for quotes
//   - MonthlySale: recorded income for one calendar month
//
// All monetary amounts are int64 in the smallest currency unit (CLP has no
// minor unit). Percentages are plain numbers in [0,100).
//
// # Relationships
//
// Records reference each other by ID strings, never pointers. A Quote keeps
// ClientID as the relation and ClientName/ClientRUT as a snapshot so it still
// reads correctly after the client is edited or deleted. A QuoteItem copies
// name, description and price from its Service for the same reason.
//
// # JSON
//
// Field names match the persisted collections, so a collection written by an
// older client decodes into these types unchanged.
package models

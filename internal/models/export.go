package models

import "github.com/shopspring/decimal"

// ExportRow is the flattened one-row-per-transaction view of the
// message tree used for CSV export.
type ExportRow struct {
	MessageID     string          `csv:"MessageId"`     // Group header message id
	StatementID   string          `csv:"StatementId"`   // Statement id
	Account       string          `csv:"Account"`       // Local account identifier
	ExecutionDate string          `csv:"ExecutionDate"` // Booking date of the entry
	EffectiveDate string          `csv:"EffectiveDate"` // Value date of the entry
	Amount        decimal.Decimal `csv:"Amount"`        // Signed amount, negative for debits
	Currency      string          `csv:"Currency"`      // Currency of the entry amount
	Purpose       string          `csv:"Purpose"`       // Entry additional info or pooled references
	PartyName     string          `csv:"PartyName"`     // Counterparty name of the first detail
	PartyAccount  string          `csv:"PartyAccount"`  // Counterparty IBAN or other id
	PartyBIC      string          `csv:"PartyBIC"`      // Counterparty bank BIC
	MandateID     string          `csv:"MandateId"`     // Direct debit mandate id
}

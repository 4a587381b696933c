// Package models provides the data structures used throughout the application.
package models

// Message is one BkToCstmrStmt element mapped to a flat record. The
// message id and creation time are mandatory in the schema; everything
// else is optional and omitted from output when absent.
type Message struct {
	MsgID          string      `json:"msgId" yaml:"msgId"`
	CreatedAt      string      `json:"createdAt" yaml:"createdAt"`
	AdditionalInfo string      `json:"additionalInfo,omitempty" yaml:"additionalInfo,omitempty"`
	Recipient      *Recipient  `json:"recipient,omitempty" yaml:"recipient,omitempty"`
	Statements     []Statement `json:"statements" yaml:"statements"`
}

// Recipient is the optional MsgRcpt block of the group header.
type Recipient struct {
	Name               string `json:"name,omitempty" yaml:"name,omitempty"`
	PostalAddress      string `json:"postalAddress,omitempty" yaml:"postalAddress,omitempty"`
	Identification     string `json:"identification,omitempty" yaml:"identification,omitempty"`
	CountryOfResidence string `json:"countryOfResidence,omitempty" yaml:"countryOfResidence,omitempty"`
	ContactDetails     string `json:"contactDetails,omitempty" yaml:"contactDetails,omitempty"`
}

// Statement is one Stmt element. LocalAccount is always present, even
// when the statement carries no account id, so downstream consumers can
// key by account unconditionally.
type Statement struct {
	ID            string        `json:"id,omitempty" yaml:"id,omitempty"`
	SeqNum        string        `json:"seqNum,omitempty" yaml:"seqNum,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	LocalAccount  string        `json:"localAccount" yaml:"localAccount"`
	LocalCurrency string        `json:"localCurrency,omitempty" yaml:"localCurrency,omitempty"`
	Date          string        `json:"date,omitempty" yaml:"date,omitempty"`
	StartBalance  *Amount       `json:"startBalance,omitempty" yaml:"startBalance,omitempty"`
	EndBalance    *Amount       `json:"endBalance,omitempty" yaml:"endBalance,omitempty"`
	Transactions  []Transaction `json:"transactions" yaml:"transactions"`
}

// Transaction is one Ntry element. Purpose is always present: it holds
// the entry's additional info when set, otherwise the pooled references
// of its details, which may legitimately be an empty string.
type Transaction struct {
	ExecutionDate      string              `json:"executionDate" yaml:"executionDate"`
	EffectiveDate      string              `json:"effectiveDate" yaml:"effectiveDate"`
	TransferType       *TransferType       `json:"transferType,omitempty" yaml:"transferType,omitempty"`
	TransferredAmount  Amount              `json:"transferredAmount" yaml:"transferredAmount"`
	TransactionDetails []TransactionDetail `json:"transactionDetails" yaml:"transactionDetails"`
	Purpose            string              `json:"purpose" yaml:"purpose"`
}

// TransferType is the proprietary bank transaction code of an entry.
type TransferType struct {
	ProprietaryCode   string `json:"proprietaryCode" yaml:"proprietaryCode"`
	ProprietaryIssuer string `json:"proprietaryIssuer,omitempty" yaml:"proprietaryIssuer,omitempty"`
}

// TransactionDetail is one TxDtls element of an entry.
type TransactionDetail struct {
	Messages   string  `json:"messages,omitempty" yaml:"messages,omitempty"`
	References string  `json:"references,omitempty" yaml:"references,omitempty"`
	MandateID  string  `json:"mandateId,omitempty" yaml:"mandateId,omitempty"`
	Reason     *Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Party      Party   `json:"party" yaml:"party"`
}

// Reason is the return reason of a transaction detail.
type Reason struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// Party is the counterparty (debtor or creditor) of a transaction
// detail. All fields are optional.
type Party struct {
	RemoteOwner        string `json:"remoteOwner,omitempty" yaml:"remoteOwner,omitempty"`
	RemoteOwnerCountry string `json:"remoteOwnerCountry,omitempty" yaml:"remoteOwnerCountry,omitempty"`
	RemoteOwnerAddress string `json:"remoteOwnerAddress,omitempty" yaml:"remoteOwnerAddress,omitempty"`
	RemoteAccount      string `json:"remoteAccount,omitempty" yaml:"remoteAccount,omitempty"`
	RemoteBankBIC      string `json:"remoteBankBIC,omitempty" yaml:"remoteBankBIC,omitempty"`
}

// IsEmpty returns true if no party field was resolved
func (p Party) IsEmpty() bool {
	return p == Party{}
}

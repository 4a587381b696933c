package camtparser

import (
	"strings"

	"fjacquet/camt-json/internal/models"
	"fjacquet/camt-json/internal/parsererror"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/shopspring/decimal"
	"github.com/masterzen/xmlpath"
)

// Return reason descriptions are not mapped yet; a visible placeholder
// keeps the field shape stable for consumers.
const reasonPlaceholder = "<not set yet>"

// parseTransaction maps one Ntry element. Booking and value dates are
// mandatory per ISO camt rules (either the plain date or the date-time
// variant must be present); the amount and its indicator likewise.
func (p *Parser) parseTransaction(entry *xmlpath.Node) (models.Transaction, error) {
	executionDate := dateText(entry, pathBookgDtDt, pathBookgDtDtTm)
	if executionDate == "" {
		return models.Transaction{}, &parsererror.RequiredFieldError{Element: "BookgDt/Dt", Context: "Ntry"}
	}
	effectiveDate := dateText(entry, pathValDtDt, pathValDtDtTm)
	if effectiveDate == "" {
		return models.Transaction{}, &parsererror.RequiredFieldError{Element: "ValDt/Dt", Context: "Ntry"}
	}

	transaction := models.Transaction{
		ExecutionDate: executionDate,
		EffectiveDate: effectiveDate,
	}

	if prtry, ok := xmlutils.First(pathBkTxCdPrtry, entry); ok {
		code, err := requireText(pathPrtryCd, prtry, "BkTxCd/Prtry/Cd", "Ntry")
		if err != nil {
			return models.Transaction{}, err
		}
		transaction.TransferType = &models.TransferType{
			ProprietaryCode:   code,
			ProprietaryIssuer: xmlutils.TextOr(pathPrtryIssr, prtry, ""),
		}
	}

	amount, err := p.formatAmount(entry, "Ntry")
	if err != nil {
		return models.Transaction{}, err
	}
	transaction.TransferredAmount = amount

	// The details need the entry's indicator to resolve the
	// counterparty role; formatAmount already proved it is present.
	indicator := xmlutils.TextOr(pathCdtDbtInd, entry, "")

	details := xmlutils.All(pathTxDtls, entry)
	transaction.TransactionDetails = make([]models.TransactionDetail, 0, len(details))
	for _, detail := range details {
		transaction.TransactionDetails = append(transaction.TransactionDetails,
			p.parseTransactionDetail(detail, indicator))
	}

	// The entry's own additional info wins; otherwise pool the
	// references of the details that carry any. Both branches can leave
	// the purpose as an empty string, which is a valid value.
	transaction.Purpose = xmlutils.TextOr(pathAddtlNtryInf, entry, "")
	if transaction.Purpose == "" {
		var references []string
		for _, detail := range transaction.TransactionDetails {
			if detail.References != "" {
				references = append(references, detail.References)
			}
		}
		transaction.Purpose = strings.Join(references, " ")
	}

	return transaction, nil
}

// parseTransactionDetail maps one TxDtls element. Every field here is
// optional, so detail parsing cannot fail.
func (p *Parser) parseTransactionDetail(node *xmlpath.Node, entryIndicator string) models.TransactionDetail {
	detail := models.TransactionDetail{}

	var messages strings.Builder
	for _, text := range xmlutils.AllText(pathUstrd, node) {
		messages.WriteString(xmlutils.CollapseWhitespace(text))
	}
	detail.Messages = messages.String()

	// EndToEndId lives under Refs, which the schema orders before
	// RmtInf, so appending the two lookups keeps document order.
	var references strings.Builder
	for _, text := range xmlutils.AllText(pathEndToEndID, node) {
		references.WriteString(strings.TrimSpace(text))
	}
	for _, text := range xmlutils.AllText(pathCdtrRef, node) {
		references.WriteString(strings.TrimSpace(text))
	}
	detail.References = references.String()

	detail.MandateID = xmlutils.TextOr(pathMndtID, node, "")

	if code, ok := xmlutils.Text(pathRtrRsnCd, node); ok {
		detail.Reason = &models.Reason{
			Code:        code,
			Description: reasonPlaceholder,
		}
	}

	detail.Party = p.resolveParty(node, entryIndicator)

	return detail
}

// formatAmount reads the Amt element and CdtDbtInd of an entry or
// balance node. Both are mandatory; DBIT flips the sign. The amount
// text is parsed as a decimal so fractional currency units survive.
func (p *Parser) formatAmount(node *xmlpath.Node, context string) (models.Amount, error) {
	indicator, ok := xmlutils.Text(pathCdtDbtInd, node)
	if !ok {
		return models.Amount{}, &parsererror.RequiredFieldError{Element: "CdtDbtInd", Context: context}
	}

	amt, ok := xmlutils.First(pathAmt, node)
	if !ok {
		return models.Amount{}, &parsererror.RequiredFieldError{Element: "Amt", Context: context}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amt.String()))
	if err != nil {
		return models.Amount{}, &parsererror.ParseError{
			Parser: "camt",
			Field:  context + "/Amt",
			Value:  amt.String(),
			Err:    err,
		}
	}

	if indicator == "DBIT" {
		value = value.Neg()
	}

	return models.Amount{
		Currency: xmlutils.TextOr(pathAmtCcy, node, ""),
		Value:    value,
	}, nil
}

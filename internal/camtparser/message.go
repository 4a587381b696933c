package camtparser

import (
	"strings"

	"fjacquet/camt-json/internal/models"
	"fjacquet/camt-json/internal/parsererror"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/masterzen/xmlpath"
)

// Balance type codes tried in priority order. A statement may carry
// several balances; the first code with a matching balance wins. ITBD
// appears in both lists, so an interim-booked balance can serve as
// start and end when it is the only one present.
var (
	startBalanceCodes = []string{"OPBD", "PRCD", "ITBD"}
	endBalanceCodes   = []string{"CLBD", "ITBD", "CLAV"}
)

// parseMessage maps one BkToCstmrStmt element. MsgId and CreDtTm are
// mandatory; the recipient block and all of its sub-fields are not.
func (p *Parser) parseMessage(node *xmlpath.Node) (models.Message, error) {
	hdr, ok := xmlutils.First(pathGrpHdr, node)
	if !ok {
		return models.Message{}, &parsererror.RequiredFieldError{Element: "GrpHdr", Context: "BkToCstmrStmt"}
	}

	msgID, err := requireText(pathMsgID, hdr, "GrpHdr/MsgId", "BkToCstmrStmt")
	if err != nil {
		return models.Message{}, err
	}
	createdAt, err := requireText(pathCreDtTm, hdr, "GrpHdr/CreDtTm", "BkToCstmrStmt")
	if err != nil {
		return models.Message{}, err
	}

	message := models.Message{
		MsgID:          msgID,
		CreatedAt:      createdAt,
		AdditionalInfo: xmlutils.TextOr(pathAddtlInf, hdr, ""),
	}

	if rcpt, ok := xmlutils.First(pathMsgRcpt, hdr); ok {
		message.Recipient = &models.Recipient{
			Name:               xmlutils.TextOr(pathNm, rcpt, ""),
			PostalAddress:      xmlutils.TextOr(pathPstlAdr, rcpt, ""),
			Identification:     xmlutils.TextOr(pathID, rcpt, ""),
			CountryOfResidence: xmlutils.TextOr(pathCtryOfRes, rcpt, ""),
			ContactDetails:     xmlutils.TextOr(pathCtctDtls, rcpt, ""),
		}
	}

	statements := xmlutils.All(pathStmt, node)
	message.Statements = make([]models.Statement, 0, len(statements))
	for _, stmtNode := range statements {
		statement, err := p.parseStatement(stmtNode)
		if err != nil {
			return models.Message{}, err
		}
		message.Statements = append(message.Statements, statement)
	}

	return message, nil
}

// parseStatement maps one Stmt element. Every header field is optional;
// the local account is special-cased to always be present as a trimmed
// string, empty when the statement has no account id.
func (p *Parser) parseStatement(node *xmlpath.Node) (models.Statement, error) {
	statement := models.Statement{
		ID:           xmlutils.TextOr(pathID, node, ""),
		SeqNum:       xmlutils.TextOr(pathElctrncSeqNb, node, ""),
		CreatedAt:    xmlutils.TextOr(pathCreDtTm, node, ""),
		LocalAccount: strings.TrimSpace(xmlutils.TextOr(pathAcctID, node, "")),
	}

	// Account currency when given, else the currency attribute of the
	// first balance amount.
	statement.LocalCurrency = xmlutils.TextOr(pathAcctCcy, node, "")
	if statement.LocalCurrency == "" {
		statement.LocalCurrency = xmlutils.TextOr(pathBalAmtCcy, node, "")
	}

	entries := xmlutils.All(pathNtry, node)

	// The statement date is the value date of its first entry.
	if len(entries) > 0 {
		statement.Date = dateText(entries[0], pathValDtDt, pathValDtDtTm)
	}

	startBalance, err := p.resolveBalance(node, startBalanceCodes)
	if err != nil {
		return models.Statement{}, err
	}
	statement.StartBalance = startBalance

	endBalance, err := p.resolveBalance(node, endBalanceCodes)
	if err != nil {
		return models.Statement{}, err
	}
	statement.EndBalance = endBalance

	statement.Transactions = make([]models.Transaction, 0, len(entries))
	for _, entry := range entries {
		transaction, err := p.parseTransaction(entry)
		if err != nil {
			return models.Statement{}, err
		}
		statement.Transactions = append(statement.Transactions, transaction)
	}

	return statement, nil
}

// resolveBalance picks the first balance whose type code matches one of
// the candidate codes, trying the codes in priority order. A statement
// without any matching balance yields nil; balances are optional.
func (p *Parser) resolveBalance(stmt *xmlpath.Node, codes []string) (*models.Amount, error) {
	balances := xmlutils.All(pathBal, stmt)

	for _, code := range codes {
		for _, balance := range balances {
			if xmlutils.TextOr(pathBalCd, balance, "") != code {
				continue
			}
			amount, err := p.formatAmount(balance, "Bal")
			if err != nil {
				return nil, err
			}
			return &amount, nil
		}
	}

	return nil, nil
}

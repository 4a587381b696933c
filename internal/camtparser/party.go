package camtparser

import (
	"fjacquet/camt-json/internal/models"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/masterzen/xmlpath"
)

// partyRole selects which related-party branch of a transaction detail
// holds the counterparty.
type partyRole string

const (
	roleDebtor   partyRole = "Dbtr"
	roleCreditor partyRole = "Cdtr"
)

// rolePaths holds the related nodes keyed by one role's element name.
type rolePaths struct {
	party   *xmlpath.Path
	account *xmlpath.Path
	bic     *xmlpath.Path
}

var relatedPaths = map[partyRole]rolePaths{
	roleDebtor: {
		party:   xmlpath.MustCompile("RltdPties/Dbtr"),
		account: xmlpath.MustCompile("RltdPties/DbtrAcct/Id"),
		bic:     xmlpath.MustCompile("RltdPties/DbtrAgt/FinInstnId/BIC"),
	},
	roleCreditor: {
		party:   xmlpath.MustCompile("RltdPties/Cdtr"),
		account: xmlpath.MustCompile("RltdPties/CdtrAcct/Id"),
		bic:     xmlpath.MustCompile("RltdPties/CdtrAgt/FinInstnId/BIC"),
	},
}

// resolveParty extracts the counterparty of a transaction detail. The
// role is keyed off the enclosing entry's credit/debit indicator: CRDT
// selects the debtor branch, anything else the creditor branch. That
// reads inverted against the schema, but it mirrors the statements this
// tool was built against; do not flip it without confirming against
// real bank exports.
func (p *Parser) resolveParty(detail *xmlpath.Node, entryIndicator string) models.Party {
	role := roleCreditor
	if entryIndicator == "CRDT" {
		role = roleDebtor
	}
	paths := relatedPaths[role]

	var party models.Party

	if node, ok := xmlutils.First(paths.party, detail); ok {
		party.RemoteOwner = xmlutils.TextOr(pathNm, node, "")
		party.RemoteOwnerCountry = xmlutils.TextOr(pathPstlAdrCtry, node, "")
		party.RemoteOwnerAddress = xmlutils.TextOr(pathPstlAdrLine, node, "")
	}

	if node, ok := xmlutils.First(paths.account, detail); ok {
		// IBAN preferred, other-identification as fallback.
		party.RemoteAccount = xmlutils.TextOr(pathIBAN, node, "")
		if party.RemoteAccount == "" {
			party.RemoteAccount = xmlutils.TextOr(pathOthrID, node, "")
		}
		party.RemoteBankBIC = xmlutils.TextOr(paths.bic, detail, "")
	}

	return party
}

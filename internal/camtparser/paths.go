package camtparser

import (
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/masterzen/xmlpath"
)

// Compiled path expressions, grouped by the context node they are
// evaluated against. Keeping them as package vars means a typo fails at
// startup instead of silently matching nothing at parse time.
var (
	// Document root.
	pathMessages       = xmlpath.MustCompile("//BkToCstmrStmt")
	pathStrictMessages = xmlutils.MustCompileWithNamespace("//x:BkToCstmrStmt")

	// BkToCstmrStmt.
	pathGrpHdr = xmlpath.MustCompile("GrpHdr")
	pathStmt   = xmlpath.MustCompile("Stmt")

	// GrpHdr and Stmt alike.
	pathCreDtTm = xmlpath.MustCompile("CreDtTm")

	// GrpHdr.
	pathMsgID    = xmlpath.MustCompile("MsgId")
	pathAddtlInf = xmlpath.MustCompile("AddtlInf")
	pathMsgRcpt  = xmlpath.MustCompile("MsgRcpt")

	// MsgRcpt.
	pathPstlAdr   = xmlpath.MustCompile("PstlAdr")
	pathCtryOfRes = xmlpath.MustCompile("CtryOfRes")
	pathCtctDtls  = xmlpath.MustCompile("CtctDtls")

	// Stmt.
	pathElctrncSeqNb = xmlpath.MustCompile("ElctrncSeqNb")
	pathAcctID       = xmlpath.MustCompile("Acct/Id")
	pathAcctCcy      = xmlpath.MustCompile("Acct/Ccy")
	pathBal          = xmlpath.MustCompile("Bal")
	pathBalAmtCcy    = xmlpath.MustCompile("Bal/Amt/@Ccy")
	pathNtry         = xmlpath.MustCompile("Ntry")

	// Bal.
	pathBalCd = xmlpath.MustCompile("Tp/CdOrPrtry/Cd")

	// Ntry.
	pathBookgDtDt    = xmlpath.MustCompile("BookgDt/Dt")
	pathBookgDtDtTm  = xmlpath.MustCompile("BookgDt/DtTm")
	pathValDtDt      = xmlpath.MustCompile("ValDt/Dt")
	pathValDtDtTm    = xmlpath.MustCompile("ValDt/DtTm")
	pathBkTxCdPrtry  = xmlpath.MustCompile("BkTxCd/Prtry")
	pathTxDtls       = xmlpath.MustCompile("NtryDtls//TxDtls")
	pathAddtlNtryInf = xmlpath.MustCompile("AddtlNtryInf")

	// BkTxCd/Prtry.
	pathPrtryCd   = xmlpath.MustCompile("Cd")
	pathPrtryIssr = xmlpath.MustCompile("Issr")

	// Ntry and Bal alike.
	pathAmt       = xmlpath.MustCompile("Amt")
	pathAmtCcy    = xmlpath.MustCompile("Amt/@Ccy")
	pathCdtDbtInd = xmlpath.MustCompile("CdtDbtInd")

	// TxDtls.
	pathUstrd      = xmlpath.MustCompile("RmtInf/Ustrd")
	pathCdtrRef    = xmlpath.MustCompile("RmtInf/Strd/CdtrRefInf/Ref")
	pathEndToEndID = xmlpath.MustCompile("Refs/EndToEndId")
	pathMndtID     = xmlpath.MustCompile("Refs/MndtId")
	pathRtrRsnCd   = xmlpath.MustCompile("RtrInf/Rsn/Cd")

	// Related party nodes.
	pathNm          = xmlpath.MustCompile("Nm")
	pathID          = xmlpath.MustCompile("Id")
	pathPstlAdrCtry = xmlpath.MustCompile("PstlAdr/Ctry")
	pathPstlAdrLine = xmlpath.MustCompile("PstlAdr/AdrLine")
	pathIBAN        = xmlpath.MustCompile("IBAN")
	pathOthrID      = xmlpath.MustCompile("Othr/Id")
)

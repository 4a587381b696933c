package camtparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBalancePriority(t *testing.T) {
	balance := func(code, amount string) string {
		return `<Bal>
  <Tp><CdOrPrtry><Cd>` + code + `</Cd></CdOrPrtry></Tp>
  <Amt Ccy="EUR">` + amount + `</Amt>
  <CdtDbtInd>CRDT</CdtDbtInd>
</Bal>`
	}

	tests := []struct {
		name      string
		balances  string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "opening booked beats interim booked",
			balances:  balance("ITBD", "50.00") + balance("OPBD", "10.00") + balance("CLBD", "60.00"),
			wantStart: "10",
			wantEnd:   "60",
		},
		{
			name:      "previously closed as start fallback",
			balances:  balance("PRCD", "11.00") + balance("CLAV", "61.00"),
			wantStart: "11",
			wantEnd:   "61",
		},
		{
			name:      "interim booked serves both roles when alone",
			balances:  balance("ITBD", "42.00"),
			wantStart: "42",
			wantEnd:   "42",
		},
		{
			name:      "unknown codes leave balances absent",
			balances:  balance("FWAV", "99.00"),
			wantStart: "",
			wantEnd:   "",
		},
		{
			name:      "no balances at all",
			balances:  "",
			wantStart: "",
			wantEnd:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<Document><BkToCstmrStmt><Stmt>` + tt.balances + `</Stmt></BkToCstmrStmt></Document>`
			node := firstNode(t, parseDoc(t, doc), "//Stmt")
			p := newTestParser()

			stmt, err := p.parseStatement(node)
			require.NoError(t, err)

			if tt.wantStart == "" {
				assert.Nil(t, stmt.StartBalance)
			} else {
				require.NotNil(t, stmt.StartBalance)
				assert.Equal(t, tt.wantStart, stmt.StartBalance.Value.String())
			}
			if tt.wantEnd == "" {
				assert.Nil(t, stmt.EndBalance)
			} else {
				require.NotNil(t, stmt.EndBalance)
				assert.Equal(t, tt.wantEnd, stmt.EndBalance.Value.String())
			}
		})
	}
}

func TestStatementCurrencyFallback(t *testing.T) {
	// No Acct/Ccy element; the currency attribute of a balance amount
	// must fill in.
	const doc = `<Document><BkToCstmrStmt><Stmt>
  <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>
  <Bal>
    <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
    <Amt Ccy="EUR">1.00</Amt>
    <CdtDbtInd>CRDT</CdtDbtInd>
  </Bal>
</Stmt></BkToCstmrStmt></Document>`

	p := newTestParser()
	stmt, err := p.parseStatement(firstNode(t, parseDoc(t, doc), "//Stmt"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", stmt.LocalCurrency)
}

func TestStatementAccountCurrencyWins(t *testing.T) {
	const doc = `<Document><BkToCstmrStmt><Stmt>
  <Acct><Ccy>CHF</Ccy></Acct>
  <Bal>
    <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
    <Amt Ccy="EUR">1.00</Amt>
    <CdtDbtInd>CRDT</CdtDbtInd>
  </Bal>
</Stmt></BkToCstmrStmt></Document>`

	p := newTestParser()
	stmt, err := p.parseStatement(firstNode(t, parseDoc(t, doc), "//Stmt"))
	require.NoError(t, err)
	assert.Equal(t, "CHF", stmt.LocalCurrency)
}

func TestStatementLocalAccountDefault(t *testing.T) {
	// No account id: localAccount must still be present as "".
	const doc = `<Document><BkToCstmrStmt><Stmt><Id>S1</Id></Stmt></BkToCstmrStmt></Document>`

	p := newTestParser()
	stmt, err := p.parseStatement(firstNode(t, parseDoc(t, doc), "//Stmt"))
	require.NoError(t, err)
	assert.Equal(t, "", stmt.LocalAccount)
	assert.Empty(t, stmt.LocalCurrency)
}

func TestStatementDateFromFirstEntry(t *testing.T) {
	const doc = `<Document><BkToCstmrStmt><Stmt>
  <Ntry>
    <Amt Ccy="EUR">1.00</Amt>
    <CdtDbtInd>CRDT</CdtDbtInd>
    <BookgDt><Dt>2023-05-01</Dt></BookgDt>
    <ValDt><DtTm>2023-05-02T12:00:00</DtTm></ValDt>
  </Ntry>
  <Ntry>
    <Amt Ccy="EUR">2.00</Amt>
    <CdtDbtInd>CRDT</CdtDbtInd>
    <BookgDt><Dt>2023-05-03</Dt></BookgDt>
    <ValDt><Dt>2023-05-04</Dt></ValDt>
  </Ntry>
</Stmt></BkToCstmrStmt></Document>`

	p := newTestParser()
	stmt, err := p.parseStatement(firstNode(t, parseDoc(t, doc), "//Stmt"))
	require.NoError(t, err)
	// The first entry has only a DtTm value date; that is the one used.
	assert.Equal(t, "2023-05-02T12:00:00", stmt.Date)
}

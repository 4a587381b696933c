package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFieldError(t *testing.T) {
	err := &RequiredFieldError{Element: "GrpHdr/MsgId", Context: "BkToCstmrStmt"}
	assert.Contains(t, err.Error(), "GrpHdr/MsgId")
	assert.Contains(t, err.Error(), "BkToCstmrStmt")
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ParseError{Parser: "camt", Field: "Ntry/Amt", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "Ntry/Amt")
	assert.Contains(t, err.Error(), "abc")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "/tmp/x.xml", Reason: "not a camt.053 document"}
	assert.Contains(t, err.Error(), "/tmp/x.xml")
	assert.Contains(t, err.Error(), "not a camt.053 document")
}

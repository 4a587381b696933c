// Package camtparser maps camt.053.001.02 bank-to-customer statements
// onto the typed message tree in internal/models. The whole document is
// loaded up front; mapping is a single depth-first traversal in
// document order, and a missing mandatory element aborts the entire
// parse with no partial result.
package camtparser

import (
	"fmt"
	"os"

	"fjacquet/camt-json/internal/models"
	"fjacquet/camt-json/internal/parsererror"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/masterzen/xmlpath"
)

// Parser maps camt.053 documents onto models.Message records.
type Parser struct {
	log    *logrus.Logger
	strict bool
}

// New creates a new camt.053 parser
func New(logger *logrus.Logger) *Parser {
	if logger == nil {
		logger = logrus.New()
	}

	return &Parser{
		log: logger,
	}
}

// SetLogger sets a custom logger for the parser
func (p *Parser) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		p.log = logger
	}
}

// SetStrictValidation controls whether ValidateFormat requires the
// camt.053.001.02 namespace on the statement elements. The default
// accepts any namespace, matching the lenient behavior most bank
// exports need.
func (p *Parser) SetStrictValidation(strict bool) {
	p.strict = strict
}

// ParseFile parses a camt.053 XML file and returns its messages in
// document order.
func (p *Parser) ParseFile(xmlFilePath string) ([]models.Message, error) {
	p.log.WithField("file", xmlFilePath).Info("Parsing camt.053 XML file")

	root, err := xmlutils.LoadXMLFile(xmlFilePath)
	if err != nil {
		return nil, err
	}

	messages, err := p.ParseDocument(root)
	if err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"messages": len(messages),
	}).Info("Successfully parsed camt.053 file")

	return messages, nil
}

// ParseDocument maps every BkToCstmrStmt element under root. A failure
// in any message discards the whole result, including messages that had
// already been mapped.
func (p *Parser) ParseDocument(root *xmlpath.Node) ([]models.Message, error) {
	nodes := xmlutils.All(pathMessages, root)

	messages := make([]models.Message, 0, len(nodes))
	for _, node := range nodes {
		message, err := p.parseMessage(node)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// ValidateFormat checks if a file is a valid camt.053 XML file
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	p.log.WithField("file", filePath).Debug("Validating camt.053 format")

	xmlFile, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := xmlFile.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlutils.Parse(xmlFile)
	if err != nil {
		p.log.WithField("file", filePath).Info("File is not a valid XML")
		return false, nil
	}

	path := pathMessages
	if p.strict {
		path = pathStrictMessages
	}
	if !path.Exists(root) {
		p.log.WithField("file", filePath).Info("File is not a valid camt.053 XML (no statement messages)")
		return false, nil
	}

	return true, nil
}

// requireText reads a mandatory element and converts its absence into
// the fail-fast error that aborts the parse.
func requireText(path *xmlpath.Path, ctx *xmlpath.Node, element, context string) (string, error) {
	value, ok := xmlutils.Text(path, ctx)
	if !ok {
		return "", &parsererror.RequiredFieldError{Element: element, Context: context}
	}
	return value, nil
}

// dateText reads a camt date choice: the plain Dt child is preferred,
// with DtTm as the fallback. Returns "" when neither is present.
func dateText(ctx *xmlpath.Node, dt, dtTm *xmlpath.Path) string {
	if value, ok := xmlutils.Text(dt, ctx); ok {
		return value
	}
	return xmlutils.TextOr(dtTm, ctx, "")
}

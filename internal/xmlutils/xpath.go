// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"github.com/masterzen/xmlpath"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file)
}

// Parse parses an XML document into a navigable node tree. The decoder
// honors the character encoding declared by the document, not just UTF-8.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	root, err := xmlpath.ParseDecoder(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}

	return root, nil
}

// First returns the first node matched by path under ctx, in document order.
func First(path *xmlpath.Path, ctx *xmlpath.Node) (*xmlpath.Node, bool) {
	iter := path.Iter(ctx)
	if !iter.Next() {
		return nil, false
	}
	return iter.Node(), true
}

// Text returns the text content of the first match of path under ctx.
// The second return value reports whether a match was found at all.
func Text(path *xmlpath.Path, ctx *xmlpath.Node) (string, bool) {
	return path.String(ctx)
}

// TextOr returns the text content of the first match of path under ctx,
// or def when nothing matches. Absent-optional lookups go through here
// so defaulting stays explicit at every call site.
func TextOr(path *xmlpath.Path, ctx *xmlpath.Node, def string) string {
	if value, ok := path.String(ctx); ok {
		return value
	}
	return def
}

// All returns every node matched by path under ctx, in document order.
func All(path *xmlpath.Path, ctx *xmlpath.Node) []*xmlpath.Node {
	var nodes []*xmlpath.Node
	iter := path.Iter(ctx)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes
}

// AllText returns the text content of every match of path under ctx,
// in document order.
func AllText(path *xmlpath.Path, ctx *xmlpath.Node) []string {
	var values []string
	iter := path.Iter(ctx)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}
	return values
}

var multiWhitespace = regexp.MustCompile(`\s{2,}`)

// CollapseWhitespace trims the text and squeezes internal runs of two
// or more whitespace characters down to a single space.
func CollapseWhitespace(text string) string {
	return multiWhitespace.ReplaceAllString(strings.TrimSpace(text), " ")
}

// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

import "github.com/masterzen/xmlpath"

// Namespaces declared by camt.053.001.02 bank exports.
const (
	// NamespaceCAMT053 is the ISO 20022 namespace of the bank-to-customer
	// statement schema this tool consumes.
	NamespaceCAMT053 = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"

	// NamespaceElectra is the institution-specific namespace some banks
	// co-declare on the same document. It is registered for strict
	// matching but no mapping rule reads elements from it.
	NamespaceElectra = "http://www.cardinal.hu/electra"
)

// CAMTNamespaces binds the short aliases used by namespace-strict paths.
var CAMTNamespaces = []xmlpath.Namespace{
	{Prefix: "x", Uri: NamespaceCAMT053},
	{Prefix: "ele", Uri: NamespaceElectra},
}

// MustCompileWithNamespace compiles a namespace-qualified path against
// the registered camt aliases, panicking on an invalid expression.
func MustCompileWithNamespace(path string) *xmlpath.Path {
	compiled, err := xmlpath.CompileWithNamespace(path, CAMTNamespaces)
	if err != nil {
		panic(err)
	}
	return compiled
}

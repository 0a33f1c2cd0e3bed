// Package syntax holds the document grammars the gate can check
// each grammar parses a whole document and reports the first error as a *gate.SyntaxError
package syntax

import "yamlgate/internal/core/gate"

// Grammar parses one kind of document
type Grammar interface {
	// Name is the label used in rejection messages, e.g. YAML
	Name() string
	// Check returns nil or a *gate.SyntaxError
	Check(content string) error
}

func syntaxErr(g Grammar, msg string) error {
	return &gate.SyntaxError{Grammar: g.Name(), Message: msg}
}

package syntax

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML checks YAML streams, every document in the stream must parse
// documents decode into yaml.Node so aliases are never expanded
type YAML struct{}

// Name implements Grammar
func (YAML) Name() string { return "YAML" }

// Check implements Grammar
func (g YAML) Check(content string) error {
	dec := yaml.NewDecoder(strings.NewReader(content))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return syntaxErr(g, err.Error())
		}
	}
}

package syntax

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML checks TOML documents
type TOML struct{}

// Name implements Grammar
func (TOML) Name() string { return "TOML" }

// Check implements Grammar
func (g TOML) Check(content string) error {
	var doc map[string]any
	err := toml.Unmarshal([]byte(content), &doc)
	if err == nil {
		return nil
	}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()
		return syntaxErr(g, fmt.Sprintf("line %d, column %d: %s", row, col, de.Error()))
	}
	return syntaxErr(g, err.Error())
}

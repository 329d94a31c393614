package chain

import (
	"fmt"

	"github.com/rubiojr/ifexpr/ast"
)

// FormatLocation renders pos as L<line>C<column>, or L<line> when the
// column is unknown. It returns "" for an invalid position.
func FormatLocation(pos ast.Position) string {
	switch {
	case !pos.IsValid():
		return ""
	case pos.Column == 0:
		return fmt.Sprintf("L%d", pos.Line)
	}
	return fmt.Sprintf("L%dC%d", pos.Line, pos.Column)
}

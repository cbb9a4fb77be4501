// Package terminal styles the text layout for color terminals
package terminal

import (
	"io"

	"github.com/arthur-debert/dotlink/pkg/ui/styles"
	"github.com/arthur-debert/dotlink/pkg/ui/text"
)

// New creates a text Reporter whose tokens are rendered with the styles
// registry
func New(w io.Writer, verbose bool) *text.Reporter {
	return text.NewStyled(w, verbose, styles.Render)
}

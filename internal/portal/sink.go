package portal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mshakil/ictportal/internal/view"
)

// pagePrinter is the Router sink for the interactive loop: it prints each
// rendered page followed by the commands the page's regions map to.
type pagePrinter struct {
	out io.Writer
}

func (p pagePrinter) Show(pg view.Page) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, pg.Body)
	if len(pg.Regions) > 0 {
		fmt.Fprintf(p.out, "[%s]\n", strings.Join(pg.Regions, " | "))
	}
}

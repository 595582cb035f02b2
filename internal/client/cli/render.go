package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophscan/internal/client/validator"
)

func printDenied(w io.Writer) {
	fmt.Fprintln(w, "DENIED  local data unusable")
}

func printDecision(w io.Writer, d *validator.Decision) {
	if d.Admitted() {
		fmt.Fprint(w, "REDEEMED")
		if d.Forced {
			fmt.Fprint(w, " (forced)")
		}
	} else {
		fmt.Fprintf(w, "DENIED  %s", strings.ReplaceAll(string(d.Reason), "_", " "))
	}
	if d.Item != nil {
		fmt.Fprintf(w, "  %s", d.Item.Name)
	}
	if d.Position != nil {
		fmt.Fprintf(w, "  order %s", d.Position.OrderCode)
	}
	fmt.Fprintln(w)

	if d.Facts != nil {
		fmt.Fprintf(w, "  entries: %d total, %d today, %d days\n",
			d.Facts.EntriesNumber, d.Facts.EntriesToday, d.Facts.EntriesDays)
	}
	if d.RevocationUnknown {
		fmt.Fprintln(w, "  warning: revocation list missing or stale")
	}
}

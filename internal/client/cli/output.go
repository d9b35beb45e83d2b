package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	pkgapi "github.com/iudanet/stendrelay/pkg/api"
)

func (c *Cli) printTransfers(transfers []pkgapi.TransferSummary) {
	if len(transfers) == 0 {
		c.io.Println("No transfers found.")
		return
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tFILE\tFROM\tEXPIRES\tURL")
	for _, t := range transfers {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.FileName, t.Nickname, formatMillis(t.ExpiresDate), t.WebURL)
	}
	_ = w.Flush()
	c.io.Printf("Total: %d\n", len(transfers))
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05")
}

func formatMethods(m pkgapi.Methods) string {
	var parts []string
	if m.InstanceAndIP {
		parts = append(parts, "instance+ip")
	}
	if m.Location {
		parts = append(parts, "location")
	}
	if m.Account {
		parts = append(parts, "account")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func parseFloatFlag(s string, dst *float64) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*dst = v
	return nil
}

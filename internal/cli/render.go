package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/roach88/itemcheck/internal/config"
	"github.com/roach88/itemcheck/internal/item"
	"github.com/roach88/itemcheck/internal/store"
)

// describeBootstrap summarizes a bootstrap result in one line.
func describeBootstrap(r store.BootstrapResult) string {
	switch {
	case r.Created && r.Seeded:
		return fmt.Sprintf("created items table, seeded %d rows", r.Count)
	case r.Seeded:
		return fmt.Sprintf("seeded %d rows", r.Count)
	default:
		return fmt.Sprintf("already set up (%d rows)", r.Count)
	}
}

// renderItems writes a titled, column-aligned table of items.
func renderItems(w io.Writer, title string, items []item.Item) error {
	fmt.Fprintf(w, "%s (%d rows):\n", title, len(items))
	if len(items) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", it.ID, it.Name, item.FormatPrice(it.Price))
	}
	return tw.Flush()
}

func renderDrafts(w io.Writer, title string, drafts []item.Draft) error {
	fmt.Fprintf(w, "%s (%d records):\n", title, len(drafts))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPRICE")
	for i, d := range drafts {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, d.Name, item.FormatPrice(d.Price))
	}
	return tw.Flush()
}

// renderCheck writes the text form of a check report.
func renderCheck(w io.Writer, r CheckReport) error {
	fmt.Fprintf(w, "ids: %s\n", config.FormatIDs(r.IDs))
	fmt.Fprintf(w, "bootstrap: %s\n", describeBootstrap(r.Bootstrap))
	fmt.Fprintln(w)

	if err := renderItems(w, "fixed", r.Fixed); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := renderItems(w, "batch", r.Batch); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if r.Match {
		fmt.Fprintf(w, "✓ result sets match (%s order)\n", r.Order)
		return nil
	}
	fmt.Fprintf(w, "✗ %s\n", r.Mismatch)
	return nil
}

// renderExpand writes the text form of an expand result.
func renderExpand(w io.Writer, r ExpandResult) error {
	switch returned := r.Returned.(type) {
	case []int64:
		sent, _ := r.Sent.([]int64)
		fmt.Fprintf(w, "sent:     [%s]\n", config.FormatIDs(sent))
		fmt.Fprintf(w, "returned: [%s]\n", config.FormatIDs(returned))
		if r.Match {
			fmt.Fprintf(w, "✓ round trip preserved %d ids\n", len(returned))
			return nil
		}
	case []item.Draft:
		if err := renderDrafts(w, "returned", returned); err != nil {
			return err
		}
		if r.Match {
			fmt.Fprintf(w, "✓ round trip preserved %d records\n", len(returned))
			return nil
		}
	default:
		return fmt.Errorf("unexpected expand result %T", r.Returned)
	}

	fmt.Fprintln(w, "✗ round trip changed the batch")
	return nil
}

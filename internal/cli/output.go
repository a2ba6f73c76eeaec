package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/rcliao/tweet-ledger/internal/model"
)

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func printTweet(w io.Writer, t *model.Tweet) {
	if formatFlag != "text" {
		printJSON(w, t)
		return
	}
	table := newTable(w)
	table.AppendBulk([][]string{
		{"address", t.Address},
		{"author", t.Author.String()},
		{"timestamp", strconv.FormatInt(t.Timestamp, 10) + " (" + time.Unix(t.Timestamp, 0).UTC().Format(time.RFC3339) + ")"},
		{"topic", t.Topic},
		{"content", t.Content},
	})
	table.Render()
}

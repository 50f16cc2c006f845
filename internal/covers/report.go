package covers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Action is what happened to an album file.
type Action string

const (
	ActionMissing  Action = "missing"   // the cover file is absent (reported only)
	ActionCreated  Action = "created"   // the cover file was made from another album image
	ActionResized  Action = "resized"   // a resized copy was written
	ActionNoSource Action = "no source" // the cover file is absent and there is nothing to make it from
	ActionFailed   Action = "failed"
)

// Row is one line of the Report.
type Row struct {
	Album         string
	File          string
	Action        Action
	Width, Height int
	Size          uint64
	Error         string
}

// Report collects the Conditioner results.
type Report struct {
	Albums int // albums found
	Rows   []Row
}

func (r *Report) add(rows ...Row) { r.Rows = append(r.Rows, rows...) }

// Count returns the number of rows with the action.
func (r *Report) Count(a Action) (n int) {
	for _, row := range r.Rows {
		if row.Action == a {
			n++
		}
	}

	return
}

// Render returns the report as a table followed by the summary line.
func (r *Report) Render() (string, error) {
	var b strings.Builder

	if len(r.Rows) > 0 {
		var data = pterm.TableData{{"Album", "File", "Action", "Dimensions", "Size"}}

		for _, row := range r.Rows {
			var dimensions, size, action = "", "", string(row.Action)

			if row.Width > 0 && row.Height > 0 {
				dimensions = strconv.Itoa(row.Width) + "x" + strconv.Itoa(row.Height)
			}

			if row.Size > 0 {
				size = humanize.Bytes(row.Size)
			}

			switch row.Action {
			case ActionFailed:
				action = pterm.Red(action + ": " + row.Error)
			case ActionMissing, ActionNoSource:
				action = pterm.Yellow(action)
			case ActionCreated, ActionResized:
				action = pterm.Green(action)
			}

			data = append(data, []string{row.Album, row.File, action, dimensions, size})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return "", err
		}

		b.WriteString(table)
		b.WriteRune('\n')
	}

	_, _ = fmt.Fprintf(&b, "%d album(s) found, %d missing, %d created, %d resized, %d failed\n",
		r.Albums,
		r.Count(ActionMissing)+r.Count(ActionNoSource),
		r.Count(ActionCreated),
		r.Count(ActionResized),
		r.Count(ActionFailed),
	)

	return b.String(), nil
}

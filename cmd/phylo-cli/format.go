package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// relationRow is one printable answer, shared by remote and offline queries.
type relationRow struct {
	From     string
	To       string
	Label    string
	Cultural string
	Half     bool
	Path     []string
}

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// outputRelations prints rows according to --format. v is the raw value
// emitted for json.
func outputRelations(v any, rows []relationRow) {
	switch flagFmt {
	case "json":
		formatJSON(v)
	case "quiet":
		for _, r := range rows {
			fmt.Println(r.Label)
		}
	default:
		cells := make([][]string, len(rows))
		for i, r := range rows {
			label := r.Label
			if r.Half {
				label += " [half]"
			}
			if r.Cultural != "" {
				label += " (" + r.Cultural + ")"
			}
			cells[i] = []string{r.From, r.To, label, strings.Join(r.Path, " > ")}
		}
		formatTable([]string{"FROM", "TO", "RELATIONSHIP", "PATH"}, cells)
	}
}

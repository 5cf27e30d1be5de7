/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolkit

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Summary appends markdown to the job summary page of the current step.
type Summary struct {
	path string
}

// NewSummary returns a Summary writing to path, or nil when the runner did
// not provide a summary file.
func NewSummary(path string) *Summary {
	if path == "" {
		return nil
	}
	return &Summary{path: path}
}

// AppendTable appends a heading followed by a markdown table. The first
// column is left aligned and the remaining status-like columns are centered.
func (s *Summary) AppendTable(heading string, headers []string, rows [][]string) error {
	var buf bytes.Buffer
	if heading != "" {
		fmt.Fprintf(&buf, "### %s\n\n", heading)
	}

	align := make([]tw.Align, len(headers))
	for i := range align {
		align[i] = tw.AlignCenter
	}
	if len(align) > 0 {
		align[0] = tw.AlignLeft
	}
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeader(headers),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignmentConfig(tw.CellAlignment{PerColumn: align}),
		tablewriter.WithRowAlignmentConfig(tw.CellAlignment{PerColumn: align}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("append summary rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render summary table: %w", err)
	}
	buf.WriteString("\n")

	return appendFileCommand(s.path, buf.String())
}

package ui

import (
	"strconv"
	"strings"

	"github.com/ytget/gapline/internal/ranges"
)

// FormatReport renders rows as tab-separated text with a header line,
// ready to paste into a spreadsheet.
func FormatReport(rows []ranges.Row, localization *Localization) string {
	var b strings.Builder

	header := []string{
		localization.GetText(KeyStartDate),
		localization.GetText(KeyEndDate),
		localization.GetText(KeyDuration),
		localization.GetText(KeyGap),
		"",
	}
	b.WriteString(strings.Join(header, ReportSeparator))
	b.WriteString("\n")

	for _, row := range rows {
		gap, status := "", ""
		if row.HasGap {
			gap = strconv.Itoa(row.Gap)
			status = row.Status.String()
		}
		fields := []string{row.Start, row.End, strconv.Itoa(row.Duration), gap, status}
		b.WriteString(strings.Join(fields, ReportSeparator))
		b.WriteString("\n")
	}
	return b.String()
}

package wizard

import "strings"

// LineKind classifies one line of generated report text.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading
	LineSubheading
	LineListItem
)

// ReportLine is a classified line with its markers stripped.
type ReportLine struct {
	Kind LineKind
	Text string
}

// FormatReportLines splits generated report text into classified lines.
// The rules mirror the layout the analysis prompt asks the model for:
//
//	**Section Title**   heading (the asterisks are stripped)
//	- finding           list item
//	1. sub-finding      sub-heading (any leading digits then a dot)
//	anything else       paragraph
//
// Blank lines are dropped. Classification looks at literal prefixes
// only; inline markdown inside a line is left untouched.
func FormatReportLines(text string) []ReportLine {
	var out []ReportLine
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		out = append(out, classifyLine(line))
	}
	return out
}

func classifyLine(line string) ReportLine {
	if len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
		return ReportLine{Kind: LineHeading, Text: strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")}
	}
	if strings.HasPrefix(line, "- ") {
		return ReportLine{Kind: LineListItem, Text: strings.TrimPrefix(line, "- ")}
	}
	if isNumberedLine(line) {
		return ReportLine{Kind: LineSubheading, Text: line}
	}
	return ReportLine{Kind: LineParagraph, Text: line}
}

// isNumberedLine reports whether the line starts with one or more digits
// immediately followed by a dot, e.g. "1. Conflict of Interest".
func isNumberedLine(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == '.'
}

package report

import (
	"fmt"
	"strings"
)

// Fixed column headers of the three rendered tables.
var (
	testTableHeader    = []string{"Test ID", "Result ID", "Result Dir or Test Name", "Cycles", "Status", "Bucket", "Seed"}
	bucketTableHeader  = []string{"Bucket", "Count", "Bucket Name"}
	summaryTableHeader = []string{"PASS", "FAIL", "No Status", "Total", "% Passing"}
)

const statTableHeadStyle = `background-color:CornflowerBlue; font-size:1em`

const (
	passCell      = `<td style="background-color:ForestGreen; color:White; text-align:center;">PASS</td>`
	failCell      = `<td style="background-color:Red; color:White; text-align:center;">Fail</td>`
	emptyLeftCell = `<td class='left'></td>`
)

// rowMode drives the positional classification of report rows. A "bucket"
// control row switches the stream into bucket statistics until a "pass"
// control row arrives; the single row following "pass" carries the summary
// statistics, after which the stream reverts to plain test rows.
type rowMode int

const (
	modeNormal rowMode = iota
	modeBucketStats
	modeSummaryStats
)

// renderTables renders the records into the bucket statistics, summary
// statistics and per-test status tables, concatenated in that order.
func renderTables(records []Record) string {
	var bucketRows, summaryRows, testRows strings.Builder

	mode := modeNormal
	for _, rec := range records {
		switch {
		case rec.hasFirstToken(controlTokenBucket):
			mode = modeBucketStats
		case rec.hasFirstToken(statusPass):
			mode = modeSummaryStats
		case mode == modeBucketStats:
			writeBucketStatRow(&bucketRows, rec)
		case mode == modeSummaryStats:
			writeSummaryStatRow(&summaryRows, rec)
			mode = modeNormal
		default:
			writeTestRow(&testRows, rec)
		}
	}

	var tables strings.Builder
	writeStatTable(&tables, bucketTableHeader, bucketRows.String())
	writeStatTable(&tables, summaryTableHeader, summaryRows.String())
	writeTestTable(&tables, testRows.String())

	return tables.String()
}

// renderHead formats the regression path and commit block shown above the
// tables. The head file must carry at least the path line and the commit line.
func renderHead(head HeadInfo) (string, error) {
	if len(head) < 2 || len(head[0]) == 0 || len(head[1]) == 0 {
		return "", fmt.Errorf("head info requires a regression path line and a commit line, got %d line(s)", len(head))
	}

	var b strings.Builder
	b.WriteString("<p>\n")
	fmt.Fprintf(&b, "<b>Regression test path: </b>%s<br>\n", head[0][0])
	fmt.Fprintf(&b, "<b>Latest commit on test branch: </b>%s<br>\n", head[1][0])
	b.WriteString("</p>\n")

	return b.String(), nil
}

func writeBucketStatRow(w *strings.Builder, rec Record) {
	// Everything past the count column belongs to the bucket name, which may
	// contain spaces.
	bucketName := strings.Join(rec[len(bucketTableHeader)-1:], " ")

	w.WriteString("<tr>")
	fmt.Fprintf(w, "<td class='center'>%s</td>", rec[0])
	fmt.Fprintf(w, "<td class='center'>%s</td>", rec[1])
	fmt.Fprintf(w, "<td class='center'>%s</td>", bucketName)
	w.WriteString("</tr>\n")
}

func writeSummaryStatRow(w *strings.Builder, rec Record) {
	w.WriteString("<tr>")
	for _, token := range rec {
		fmt.Fprintf(w, "<td class='center'>%s</td>", token)
	}
	w.WriteString("</tr>\n")
}

func writeTestRow(w *strings.Builder, rec Record) {
	w.WriteString("<tr>")
	for _, token := range rec {
		switch {
		case strings.EqualFold(token, statusPass):
			// The empty trailing cell and the PASS/Fail capitalization
			// mismatch are kept to stay identical to earlier reports.
			w.WriteString(passCell)
			w.WriteString(emptyLeftCell)
		case strings.EqualFold(token, statusFail):
			w.WriteString(failCell)
		default:
			fmt.Fprintf(w, "<td class='left'>%s</td>", token)
		}
	}
	w.WriteString("</tr>\n")
}

func writeStatTable(w *strings.Builder, header []string, rows string) {
	w.WriteString("<table>")
	fmt.Fprintf(w, "<thead style=\"%s\"><tr><th>%s</th></tr></thead>\n", statTableHeadStyle, strings.Join(header, "</th><th>"))
	w.WriteString(rows)
	// No opening <tbody>: earlier reports carried only the close tag and the
	// output has to diff clean against them.
	w.WriteString("</tbody>\n")
	w.WriteString("<tfoot></tfoot>\n")
	w.WriteString("</table>\n")
	w.WriteString("<p> </p>\n")
}

func writeTestTable(w *strings.Builder, rows string) {
	w.WriteString("<table>")
	fmt.Fprintf(w, "<thead><tr><th>%s</th></tr></thead>\n", strings.Join(testTableHeader, "</th><th>"))
	w.WriteString(rows)
	w.WriteString("</tbody>\n")
	w.WriteString("<tfoot></tfoot>\n")
	w.WriteString("</table>\n")
}

package report

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
)

const (
	// The report opens with a title line and a column header line.
	headerLineCount = 2
	// Anything shorter cannot be a test or statistics row.
	minTokenCount = 4
)

// Parser collects the artifacts the parallel simulation jobs left behind:
// the aggregated plain-text test report and the head info file.
type Parser interface {
	CollectResults(reportPth string) ([]Record, error)
	CollectHead(headPth string) (HeadInfo, error)
}

type parser struct {
	logger      log.Logger
	fileManager fileutil.FileManager
}

// NewParser ...
func NewParser(logger log.Logger, fileManager fileutil.FileManager) Parser {
	return parser{
		logger:      logger,
		fileManager: fileManager,
	}
}

// CollectResults reads the plain-text report and returns its retained rows in
// file order. The two header lines, separator lines (first token starting
// with "-") and lines with fewer than 4 tokens are dropped without warning.
func (p parser) CollectResults(reportPth string) ([]Record, error) {
	file, err := p.fileManager.Open(reportPth)
	if err != nil {
		return nil, fmt.Errorf("failed to open test report: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.Warnf("Failed to close %s: %s", reportPth, err)
		}
	}()

	var records []Record
	lineNumber := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if lineNumber <= headerLineCount {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < minTokenCount || strings.HasPrefix(tokens[0], "-") {
			continue
		}

		// The entities are left unterminated on purpose: historical reports
		// were generated this way and downstream consumers diff against them.
		line = strings.ReplaceAll(line, "<", "&lt")
		line = strings.ReplaceAll(line, ">", "&gt")

		records = append(records, Record(strings.Fields(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test report: %w", err)
	}

	p.logger.Printf("Total %d tests", len(records))

	return records, nil
}

// CollectHead reads the head info file into per-line token lists. No filtering
// is applied; a malformed file surfaces when the composer consumes it.
func (p parser) CollectHead(headPth string) (HeadInfo, error) {
	file, err := p.fileManager.Open(headPth)
	if err != nil {
		return nil, fmt.Errorf("failed to open head file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.Warnf("Failed to close %s: %s", headPth, err)
		}
	}()

	var head HeadInfo
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		head = append(head, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read head file: %w", err)
	}

	return head, nil
}

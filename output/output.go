package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/LingWang7547/steps-regression-email-report/report"
)

// Environment outputs for downstream pipeline steps.
const (
	regtestResultKey        = "REGTEST_RESULT"
	regtestPassedCountKey   = "REGTEST_PASSED_COUNT"
	regtestFailedCountKey   = "REGTEST_FAILED_COUNT"
	regtestNoStatusCountKey = "REGTEST_NO_STATUS_COUNT"
	regtestTotalCountKey    = "REGTEST_TOTAL_COUNT"
	regtestReportPathKey    = "REGTEST_HTML_REPORT_PATH"
)

const htmlExtension = ".html"

// Exporter persists the HTML report and hands the run results over to later
// pipeline steps.
type Exporter interface {
	ExportReport(reportPth, htmlReport string) (string, error)
	ExportRunResult(stats report.Stats)
}

type exporter struct {
	envRepository  env.Repository
	fileManager    fileutil.FileManager
	logger         log.Logger
	outputExporter export.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, fileManager fileutil.FileManager, logger log.Logger, outputExporter export.Exporter) Exporter {
	return exporter{
		envRepository:  envRepository,
		fileManager:    fileManager,
		logger:         logger,
		outputExporter: outputExporter,
	}
}

// ExportReport writes the HTML document next to the plain-text report, sharing
// its basename, and publishes the path. A failed path export is logged but
// does not fail the run; the file on disk is the primary artifact.
func (e exporter) ExportReport(reportPth, htmlReport string) (string, error) {
	htmlPth := strings.TrimSuffix(reportPth, filepath.Ext(reportPth)) + htmlExtension

	if err := e.fileManager.Write(htmlPth, htmlReport, 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML report: %w", err)
	}

	if err := e.envRepository.Set(regtestReportPathKey, htmlPth); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", regtestReportPathKey, err)
	}
	if err := e.outputExporter.ExportOutput(regtestReportPathKey, htmlPth); err != nil {
		e.logger.Warnf("Failed to export output: %s: %s", regtestReportPathKey, err)
	}

	return htmlPth, nil
}

// ExportRunResult exposes the aggregate run outcome to the environment.
func (e exporter) ExportRunResult(stats report.Stats) {
	status := "succeeded"
	if stats.Failed > 0 {
		status = "failed"
	}

	values := map[string]string{
		regtestResultKey:        status,
		regtestPassedCountKey:   strconv.Itoa(stats.Passed),
		regtestFailedCountKey:   strconv.Itoa(stats.Failed),
		regtestNoStatusCountKey: strconv.Itoa(stats.NoStatus),
		regtestTotalCountKey:    strconv.Itoa(stats.Total()),
	}
	for key, value := range values {
		if err := e.envRepository.Set(key, value); err != nil {
			e.logger.Warnf("Failed to export: %s: %s", key, err)
		}
	}
}

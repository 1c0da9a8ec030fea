package main

import (
	"fmt"
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"

	"github.com/LingWang7547/steps-regression-email-report/mailer"
	"github.com/LingWang7547/steps-regression-email-report/output"
	"github.com/LingWang7547/steps-regression-email-report/report"
	"github.com/LingWang7547/steps-regression-email-report/step"
)

const usage = "Usage: regression-email-report to_email_list_file cc_email_list_file plain_text_test_report head_file_name"

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	if len(os.Args) < 5 {
		fmt.Println(usage)
		return 1
	}

	reporter := createStep(logger)

	config, err := reporter.ProcessConfig(os.Args[1:5])
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	result, err := reporter.Run(config)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return 1
	}

	if err := reporter.Export(result); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	return 0
}

func createStep(logger log.Logger) step.RegressionReporter {
	envRepository := env.NewRepository()
	inputParser := stepconf.NewInputParser(envRepository)
	fileManager := fileutil.NewFileManager()
	pathModifier := pathutil.NewPathModifier()
	commandFactory := command.NewFactory(envRepository)

	parser := report.NewParser(logger, fileManager)
	composer := report.NewComposer(fileManager)
	reportMailer := mailer.NewMailer(logger, fileManager)
	exporter := output.NewExporter(envRepository, fileManager, logger, export.NewExporter(commandFactory, export.NewFileManager()))

	return step.NewRegressionReporter(inputParser, logger, pathModifier, parser, composer, reportMailer, exporter)
}

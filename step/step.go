package step

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/jordan-wright/email"

	"github.com/LingWang7547/steps-regression-email-report/mailer"
	"github.com/LingWang7547/steps-regression-email-report/output"
	"github.com/LingWang7547/steps-regression-email-report/report"
)

// Defaults of the mail-related inputs; the regression pipeline overrides them
// through the step environment when needed.
const (
	defaultSMTPHost     = "smtp.intel.com"
	defaultSender       = "psgpac@intel.com"
	defaultSubject      = "Regression results for OFS FIM UVM simulation"
	defaultTemplateName = "email_template.css"
)

// Input ...
type Input struct {
	SendEmail    bool   `env:"send_email"`
	SMTPHost     string `env:"smtp_host"`
	EmailFrom    string `env:"email_from"`
	EmailSubject string `env:"email_subject"`
	TemplatePath string `env:"email_template_path"`

	// Debug
	Verbose bool `env:"verbose"`
}

// Config ...
type Config struct {
	ToListPth   string
	CcListPth   string
	ReportPth   string
	HeadPth     string
	TemplatePth string

	SendEmail bool
	Mail      mailer.Config
}

// Result ...
type Result struct {
	ReportPth  string
	HTMLReport string
	Message    *email.Email
	Stats      report.Stats
}

// RegressionReporter collects the summary reports the parallel simulation
// jobs produced, renders them into an HTML email report, and persists it.
type RegressionReporter struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
	parser       report.Parser
	composer     report.Composer
	mailer       mailer.Mailer
	exporter     output.Exporter
}

// NewRegressionReporter ...
func NewRegressionReporter(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier, parser report.Parser, composer report.Composer, reportMailer mailer.Mailer, exporter output.Exporter) RegressionReporter {
	return RegressionReporter{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
		parser:       parser,
		composer:     composer,
		mailer:       reportMailer,
		exporter:     exporter,
	}
}

// ProcessConfig merges the four positional file paths with the environment
// inputs. Only the argument count is validated; missing or malformed files
// surface when the run consumes them.
func (s RegressionReporter) ProcessConfig(args []string) (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, fmt.Errorf("failed to parse step inputs: %w", err)
	}

	stepconf.Print(input)
	s.logger.Println()
	s.logger.EnableDebugLog(input.Verbose)

	if len(args) != 4 {
		return Config{}, fmt.Errorf("4 file paths expected (to list, cc list, test report, head file), got %d", len(args))
	}

	paths := make([]string, len(args))
	for i, pth := range args {
		abs, err := s.pathModifier.AbsPath(pth)
		if err != nil {
			return Config{}, fmt.Errorf("failed to get absolute path of %s: %w", pth, err)
		}
		paths[i] = abs
	}

	templatePth := input.TemplatePath
	if templatePth == "" {
		templatePth = defaultTemplatePath()
	}

	cfg := Config{
		ToListPth:   paths[0],
		CcListPth:   paths[1],
		ReportPth:   paths[2],
		HeadPth:     paths[3],
		TemplatePth: templatePth,

		SendEmail: input.SendEmail,
		Mail: mailer.Config{
			From:     withDefault(input.EmailFrom, defaultSender),
			Subject:  withDefault(input.EmailSubject, defaultSubject),
			SMTPHost: withDefault(input.SMTPHost, defaultSMTPHost),
		},
	}

	s.logger.Infof("Collecting regression results")
	s.logger.Printf("- to list: %s", cfg.ToListPth)
	s.logger.Printf("- cc list: %s", cfg.CcListPth)
	s.logger.Printf("- plain text report: %s", cfg.ReportPth)
	s.logger.Printf("- head file: %s", cfg.HeadPth)
	s.logger.Println()

	return cfg, nil
}

// Run parses the report artifacts, composes the HTML document and builds the
// email message. The message is only submitted when sending is enabled; by
// default the report is delivered through the file written by Export.
func (s RegressionReporter) Run(cfg Config) (Result, error) {
	records, err := s.parser.CollectResults(cfg.ReportPth)
	if err != nil {
		return Result{}, err
	}

	head, err := s.parser.CollectHead(cfg.HeadPth)
	if err != nil {
		return Result{}, err
	}

	htmlReport, err := s.composer.Compose(cfg.TemplatePth, records, head)
	if err != nil {
		return Result{}, err
	}

	msg, err := s.mailer.BuildMessage(cfg.Mail, cfg.ToListPth, cfg.CcListPth, htmlReport)
	if err != nil {
		return Result{}, err
	}

	if cfg.SendEmail {
		if err := s.mailer.Send(cfg.Mail, msg); err != nil {
			return Result{}, err
		}
	} else {
		s.logger.Printf("Email sending is disabled (send_email), the message was only assembled")
	}

	return Result{
		ReportPth:  cfg.ReportPth,
		HTMLReport: htmlReport,
		Message:    msg,
		Stats:      report.Tally(records),
	}, nil
}

// Export persists the HTML report next to the input report and publishes the
// run results for downstream steps.
func (s RegressionReporter) Export(result Result) error {
	htmlPth, err := s.exporter.ExportReport(result.ReportPth, result.HTMLReport)
	if err != nil {
		return err
	}
	s.exporter.ExportRunResult(result.Stats)

	s.logger.Donef("HTML report saved to %s", htmlPth)

	return nil
}

func defaultTemplatePath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultTemplateName
	}
	return filepath.Join(filepath.Dir(exe), defaultTemplateName)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

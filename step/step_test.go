package step

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LingWang7547/steps-regression-email-report/mailer"
	"github.com/LingWang7547/steps-regression-email-report/report"
	"github.com/LingWang7547/steps-regression-email-report/step/mocks"
)

type testingMocks struct {
	pathModifier *mocks.PathModifier
	parser       *mocks.Parser
	composer     *mocks.Composer
	mailer       *mocks.Mailer
	exporter     *mocks.Exporter
}

func Test_GivenNoEnvironmentInputs_WhenProcessingConfig_ThenAppliesDefaults(t *testing.T) {
	// Given
	step, _ := createStepAndMocks(t, map[string]string{})

	// When
	cfg, err := step.ProcessConfig([]string{"to.txt", "cc.txt", "results.txt", "head.txt"})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/work/to.txt", cfg.ToListPth)
	assert.Equal(t, "/work/cc.txt", cfg.CcListPth)
	assert.Equal(t, "/work/results.txt", cfg.ReportPth)
	assert.Equal(t, "/work/head.txt", cfg.HeadPth)
	assert.False(t, cfg.SendEmail)
	assert.True(t, strings.HasSuffix(cfg.TemplatePth, defaultTemplateName))
	assert.Equal(t, mailer.Config{
		From:     defaultSender,
		Subject:  defaultSubject,
		SMTPHost: defaultSMTPHost,
	}, cfg.Mail)
}

func Test_GivenEnvironmentInputs_WhenProcessingConfig_ThenOverridesDefaults(t *testing.T) {
	// Given
	step, _ := createStepAndMocks(t, map[string]string{
		"send_email":          "true",
		"smtp_host":           "mail.example.com",
		"email_from":          "reports@example.com",
		"email_subject":       "Nightly regression",
		"email_template_path": "/templates/custom.css",
	})

	// When
	cfg, err := step.ProcessConfig([]string{"to.txt", "cc.txt", "results.txt", "head.txt"})

	// Then
	require.NoError(t, err)
	assert.True(t, cfg.SendEmail)
	assert.Equal(t, "/templates/custom.css", cfg.TemplatePth)
	assert.Equal(t, mailer.Config{
		From:     "reports@example.com",
		Subject:  "Nightly regression",
		SMTPHost: "mail.example.com",
	}, cfg.Mail)
}

func Test_GivenWrongArgumentCount_WhenProcessingConfig_ThenFails(t *testing.T) {
	// Given
	step, _ := createStepAndMocks(t, map[string]string{})

	// When
	_, err := step.ProcessConfig([]string{"to.txt", "cc.txt", "results.txt"})

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 file paths expected")
}

func Test_GivenSendingDisabled_WhenRunning_ThenBuildsMessageWithoutSending(t *testing.T) {
	// Given
	step, m := createStepAndMocks(t, map[string]string{})
	records := []report.Record{{"t1", "r1", "name", "5", "PASS", "b1", "42"}}
	head := report.HeadInfo{{"/regress"}, {"abc"}}
	msg := &email.Email{Subject: "Regression results"}

	m.parser.On("CollectResults", "/work/results.txt").Return(records, nil)
	m.parser.On("CollectHead", "/work/head.txt").Return(head, nil)
	m.composer.On("Compose", "/templates/t.css", records, head).Return("<html></html>", nil)
	m.mailer.On("BuildMessage", mock.Anything, "/work/to.txt", "/work/cc.txt", "<html></html>").Return(msg, nil)

	cfg := Config{
		ToListPth:   "/work/to.txt",
		CcListPth:   "/work/cc.txt",
		ReportPth:   "/work/results.txt",
		HeadPth:     "/work/head.txt",
		TemplatePth: "/templates/t.css",
	}

	// When
	result, err := step.Run(cfg)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/work/results.txt", result.ReportPth)
	assert.Equal(t, "<html></html>", result.HTMLReport)
	assert.Equal(t, msg, result.Message)
	assert.Equal(t, report.Stats{Passed: 1}, result.Stats)
	m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func Test_GivenSendingEnabled_WhenRunning_ThenSendsTheMessage(t *testing.T) {
	// Given
	step, m := createStepAndMocks(t, map[string]string{})
	msg := &email.Email{}
	mailCfg := mailer.Config{From: "reports@example.com", SMTPHost: "mail.example.com"}

	m.parser.On("CollectResults", mock.Anything).Return([]report.Record{}, nil)
	m.parser.On("CollectHead", mock.Anything).Return(report.HeadInfo{{"/regress"}, {"abc"}}, nil)
	m.composer.On("Compose", mock.Anything, mock.Anything, mock.Anything).Return("<html></html>", nil)
	m.mailer.On("BuildMessage", mailCfg, mock.Anything, mock.Anything, mock.Anything).Return(msg, nil)
	m.mailer.On("Send", mailCfg, msg).Return(nil)

	// When
	_, err := step.Run(Config{SendEmail: true, Mail: mailCfg})

	// Then
	require.NoError(t, err)
	m.mailer.AssertCalled(t, "Send", mailCfg, msg)
}

func Test_GivenParserFailure_WhenRunning_ThenFails(t *testing.T) {
	// Given
	step, m := createStepAndMocks(t, map[string]string{})
	m.parser.On("CollectResults", mock.Anything).Return(nil, os.ErrNotExist)

	// When
	_, err := step.Run(Config{ReportPth: "/work/results.txt"})

	// Then
	require.Error(t, err)
}

func Test_GivenRunResult_WhenExporting_ThenPublishesReportAndStats(t *testing.T) {
	// Given
	step, m := createStepAndMocks(t, map[string]string{})
	stats := report.Stats{Passed: 10, Failed: 2}

	m.exporter.On("ExportReport", "/work/results.txt", "<html></html>").Return("/work/results.html", nil)
	m.exporter.On("ExportRunResult", stats).Return()

	// When
	err := step.Export(Result{ReportPth: "/work/results.txt", HTMLReport: "<html></html>", Stats: stats})

	// Then
	require.NoError(t, err)
}

func Test_GivenRegressionArtifacts_WhenStepRuns_ThenProducesTheFullReport(t *testing.T) {
	// Given
	dir := t.TempDir()
	toPth := writeFile(t, dir, "to.txt", "dev@example.com\n")
	ccPth := writeFile(t, dir, "cc.txt", "lead@example.com\n")
	reportPth := writeFile(t, dir, "results.txt",
		"UVM Regression summary\n"+
			"Test ID  Result ID  Name  Cycles  Status  Bucket  Seed\n"+
			"t1 r1 testname 5 PASS b1 42\n"+
			"t2 r2 othertest 3 FAIL b2 7\n")
	headPth := writeFile(t, dir, "head.txt", "/nfs/regress/run42\nabc1234\n")
	templatePth := writeFile(t, dir, "template.css", "<html><body>${body}</body></html>")

	t.Setenv("email_template_path", templatePth)
	t.Setenv("send_email", "")
	t.Setenv("smtp_host", "")
	t.Setenv("email_from", "")
	t.Setenv("email_subject", "")
	t.Setenv("verbose", "")

	logger := log.NewLogger()
	fileManager := fileutil.NewFileManager()
	envRepository := env.NewRepository()
	exporter := mocks.NewExporter(t)
	exporter.On("ExportReport", reportPth, mock.Anything).Return(filepath.Join(dir, "results.html"), nil)
	exporter.On("ExportRunResult", report.Stats{Passed: 1, Failed: 1}).Return()

	step := NewRegressionReporter(
		stepconf.NewInputParser(envRepository),
		logger,
		pathutil.NewPathModifier(),
		report.NewParser(logger, fileManager),
		report.NewComposer(fileManager),
		mailer.NewMailer(logger, fileManager),
		exporter,
	)

	before := time.Now().Format("20060102T1504")

	// When
	cfg, err := step.ProcessConfig([]string{toPth, ccPth, reportPth, headPth})
	require.NoError(t, err)
	result, err := step.Run(cfg)
	require.NoError(t, err)
	err = step.Export(result)

	// Then
	require.NoError(t, err)
	after := time.Now().Format("20060102T1504")
	title := "<h1>UVM Regression Tests "
	assert.True(t,
		strings.Contains(result.HTMLReport, title+before+"</h1>") ||
			strings.Contains(result.HTMLReport, title+after+"</h1>"))
	assert.Contains(t, result.HTMLReport, "<b>Regression test path: </b>/nfs/regress/run42<br>")
	assert.Equal(t, 1, strings.Count(result.HTMLReport, "ForestGreen"))
	assert.Equal(t, 1, strings.Count(result.HTMLReport, "background-color:Red"))
	assert.Equal(t, []string{"dev@example.com"}, result.Message.To)
	assert.Equal(t, report.Stats{Passed: 1, Failed: 1}, result.Stats)
}

// Helpers

func createStepAndMocks(t *testing.T, envValues map[string]string) (RegressionReporter, testingMocks) {
	envRepository := mocks.NewRepository(t)
	getCall := envRepository.On("Get", mock.Anything).Maybe()
	getCall.RunFn = func(args mock.Arguments) {
		getCall.ReturnArguments = mock.Arguments{envValues[args.String(0)]}
	}

	pathModifier := mocks.NewPathModifier(t)
	absCall := pathModifier.On("AbsPath", mock.Anything).Maybe()
	absCall.RunFn = func(args mock.Arguments) {
		absCall.ReturnArguments = mock.Arguments{"/work/" + args.String(0), nil}
	}

	parser := mocks.NewParser(t)
	composer := mocks.NewComposer(t)
	reportMailer := mocks.NewMailer(t)
	exporter := mocks.NewExporter(t)

	step := NewRegressionReporter(
		stepconf.NewInputParser(envRepository),
		log.NewLogger(),
		pathModifier,
		parser,
		composer,
		reportMailer,
		exporter,
	)

	return step, testingMocks{
		pathModifier: pathModifier,
		parser:       parser,
		composer:     composer,
		mailer:       reportMailer,
		exporter:     exporter,
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	pth := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(pth, []byte(content), 0600))
	return pth
}

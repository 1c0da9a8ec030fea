package mailer

import (
	"fmt"
	"io"
	"net/smtp"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/jordan-wright/email"
)

const (
	titleHeader     = "X-Regtest-Title"
	defaultSMTPPort = "25"
)

// Headers reserved for regression run metadata. They are part of the report
// message contract but not populated yet; consumers key on their presence.
var regtestHeaders = []string{
	"X-Regtest-Failed",
	"X-Regtest-Passed",
	"X-Regtest-Timeout",
	"X-Regtest-Missing",
	"X-Regtest-Total",
}

// Config ...
type Config struct {
	From     string
	Subject  string
	SMTPHost string
}

// Mailer builds the report message and, when sending is enabled, submits it
// to the outbound mail server.
type Mailer interface {
	BuildMessage(cfg Config, toListPth, ccListPth, htmlReport string) (*email.Email, error)
	Send(cfg Config, msg *email.Email) error
}

type mailer struct {
	logger      log.Logger
	fileManager fileutil.FileManager
}

// NewMailer ...
func NewMailer(logger log.Logger, fileManager fileutil.FileManager) Mailer {
	return mailer{
		logger:      logger,
		fileManager: fileManager,
	}
}

// BuildMessage assembles the multipart report message. The To and CC header
// values are the recipient list file contents as-is (surrounding whitespace
// trimmed); the files hold comma-separated address lists by convention and
// are not validated here.
func (m mailer) BuildMessage(cfg Config, toListPth, ccListPth, htmlReport string) (*email.Email, error) {
	to, err := m.readAddressList(toListPth)
	if err != nil {
		return nil, err
	}
	cc, err := m.readAddressList(ccListPth)
	if err != nil {
		return nil, err
	}

	msg := email.NewEmail()
	msg.From = cfg.From
	msg.To = []string{to}
	msg.Cc = []string{cc}
	msg.Subject = cfg.Subject
	msg.HTML = []byte(htmlReport)

	msg.Headers.Set(titleHeader, cfg.Subject)
	for _, header := range regtestHeaders {
		msg.Headers.Set(header, "")
	}

	return msg, nil
}

// Send submits the message over plain SMTP. The envelope recipients are split
// out of the address lists; the message headers keep the list strings as they
// were read from the files.
func (m mailer) Send(cfg Config, msg *email.Email) error {
	raw, err := msg.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize email message: %w", err)
	}

	recipients := splitAddressLists(append(append([]string{}, msg.To...), msg.Cc...))
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients in the To and CC lists")
	}

	addr := cfg.SMTPHost
	if !strings.Contains(addr, ":") {
		addr += ":" + defaultSMTPPort
	}

	m.logger.Infof("Sending report to %d recipient(s) via %s", len(recipients), addr)
	if err := smtp.SendMail(addr, nil, msg.From, recipients, raw); err != nil {
		return fmt.Errorf("failed to send email report: %w", err)
	}
	m.logger.Donef("Report sent")

	return nil
}

func (m mailer) readAddressList(pth string) (string, error) {
	file, err := m.fileManager.Open(pth)
	if err != nil {
		return "", fmt.Errorf("failed to open recipient list: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			m.logger.Warnf("Failed to close %s: %s", pth, err)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read recipient list: %w", err)
	}

	return strings.TrimSpace(string(content)), nil
}

func splitAddressLists(lists []string) []string {
	var addresses []string
	for _, list := range lists {
		parts := strings.FieldsFunc(list, func(r rune) bool {
			return r == ',' || r == ';'
		})
		for _, addr := range parts {
			if addr = strings.TrimSpace(addr); addr != "" {
				addresses = append(addresses, addr)
			}
		}
	}
	return addresses
}

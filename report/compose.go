package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/fileutil"
)

const (
	reportTitle     = "UVM Regression Tests"
	titleTimeLayout = "20060102T1504"
	bodyPlaceholder = "${body}"
)

// Composer renders the collected results into the final HTML document.
type Composer interface {
	Compose(templatePth string, records []Record, head HeadInfo) (string, error)
}

type composer struct {
	fileManager fileutil.FileManager
	now         func() time.Time
}

// NewComposer ...
func NewComposer(fileManager fileutil.FileManager) Composer {
	return composer{
		fileManager: fileManager,
		now:         time.Now,
	}
}

// Compose builds the titled report (title, head block, the three tables) and
// substitutes it into the template's body placeholder. A template without the
// placeholder is an error.
func (c composer) Compose(templatePth string, records []Record, head HeadInfo) (string, error) {
	htmlHead, err := renderHead(head)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("<h1>%s %s</h1>", reportTitle, c.now().Format(titleTimeLayout))
	body := title + htmlHead + renderTables(records)

	template, err := c.readTemplate(templatePth)
	if err != nil {
		return "", err
	}
	if !strings.Contains(template, bodyPlaceholder) {
		return "", fmt.Errorf("template %s is missing the %s placeholder", templatePth, bodyPlaceholder)
	}

	return strings.ReplaceAll(template, bodyPlaceholder, body), nil
}

func (c composer) readTemplate(templatePth string) (string, error) {
	file, err := c.fileManager.Open(templatePth)
	if err != nil {
		return "", fmt.Errorf("failed to open report template: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read report template: %w", err)
	}

	return string(content), nil
}

package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/degrootsam/shai-hulud-detector/detector/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	config models.PresenterConfig
}

// NewPresenter is a *Presenter constructor
func NewPresenter(config models.PresenterConfig) *Presenter {
	return &Presenter{
		config: config,
	}
}

// Present creates a human readable table-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	rows := make([][]string, 0)
	for _, m := range pres.config.Matches.Sorted() {
		rows = append(rows, []string{m.Package, m.Version, strings.Join(m.RepositoryNames(), ", ")})
	}

	if len(rows) == 0 {
		_, err := io.WriteString(output, "No watched packages found\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Package", "Version", "Repositories"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}

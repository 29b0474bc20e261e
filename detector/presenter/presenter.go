package presenter

import (
	"io"

	"github.com/degrootsam/shai-hulud-detector/detector/presenter/json"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter/models"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter/sarif"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option, config models.PresenterConfig) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(config)
	case TablePresenter:
		return table.NewPresenter(config)
	case SarifPresenter:
		return sarif.NewPresenter(config)
	default:
		return nil
	}
}

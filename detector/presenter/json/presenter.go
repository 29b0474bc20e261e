package json

import (
	"encoding/json"
	"io"

	"github.com/degrootsam/shai-hulud-detector/detector/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	config models.PresenterConfig
}

// NewPresenter creates a new JSON presenter
func NewPresenter(config models.PresenterConfig) *Presenter {
	return &Presenter{
		config: config,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(pres.config)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}

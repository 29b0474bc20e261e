package detector

import (
	"github.com/wagoodman/go-partybus"

	"github.com/degrootsam/shai-hulud-detector/internal/bus"
	"github.com/degrootsam/shai-hulud-detector/internal/log"
)

func SetLogger(logger log.Logger) {
	log.Log = logger
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}

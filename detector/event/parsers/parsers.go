package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/degrootsam/shai-hulud-detector/detector/event"
	"github.com/degrootsam/shai-hulud-detector/detector/event/monitor"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseOrganizationScanStarted(e partybus.Event) (*monitor.Scan, error) {
	if err := checkEventType(e.Type, event.OrganizationScanStarted); err != nil {
		return nil, err
	}

	mon, ok := e.Value.(monitor.Scan)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &mon, nil
}

func ParseOrganizationScanFinished(e partybus.Event) (presenter.Presenter, error) {
	if err := checkEventType(e.Type, event.OrganizationScanFinished); err != nil {
		return nil, err
	}

	pres, ok := e.Value.(presenter.Presenter)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return pres, nil
}

func ParseAppUpdateAvailable(e partybus.Event) (string, error) {
	if err := checkEventType(e.Type, event.AppUpdateAvailable); err != nil {
		return "", err
	}

	newVersion, ok := e.Value.(string)
	if !ok {
		return "", newPayloadErr(e.Type, "Value", e.Value)
	}

	return newVersion, nil
}

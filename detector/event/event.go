/*
Package event provides event types for all events that the library published onto the event bus. By convention, for each event
defined here there should be a corresponding event parser defined in the parsers/ child package.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// AppUpdateAvailable is a partybus event that occurs when an application update is available
	AppUpdateAvailable partybus.EventType = "shai-hulud-detector-app-update-available"

	// OrganizationScanStarted is a partybus event that occurs when SBOM scanning of an organization's repositories has begun
	OrganizationScanStarted partybus.EventType = "shai-hulud-detector-organization-scan-started"

	// OrganizationScanFinished is a partybus event that occurs when SBOM scanning of an organization's repositories has completed
	OrganizationScanFinished partybus.EventType = "shai-hulud-detector-organization-scan-finished"
)

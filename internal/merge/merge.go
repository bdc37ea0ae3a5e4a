// Package merge combines freshly materialized records with previously
// persisted configuration sections. Monitors and listen addresses follow a
// list-replace policy; devices are upserted by id. Each merge is a pure
// function of (existing, new, keepExisting) and the three families are
// merged independently.
package merge

import (
	"github.com/vk/upsconf/internal/confdoc"
	"github.com/vk/upsconf/internal/records"
)

// Monitors merges new monitor records into the existing list. With
// keepExisting false the existing entries are discarded; otherwise new
// entries are appended after them, preserving order on both sides.
func Monitors(existing []confdoc.MonitorEntry, monitors []records.Monitor, keepExisting bool) []confdoc.MonitorEntry {
	var out []confdoc.MonitorEntry
	if keepExisting {
		out = append(out, existing...)
	}

	for _, m := range monitors {
		out = append(out, confdoc.MonitorEntry{
			UPS:        m.UPS,
			Host:       m.Host,
			Port:       m.Port,
			PowerValue: m.PowerValue,
			User:       m.User,
			Password:   m.Password,
			Master:     m.IsMaster,
		})
	}

	return out
}

// Listens merges new listen-address records into the existing list, under
// the same list-replace policy as Monitors.
func Listens(existing []confdoc.ListenEntry, listens []records.ListenAddress, keepExisting bool) []confdoc.ListenEntry {
	var out []confdoc.ListenEntry
	if keepExisting {
		out = append(out, existing...)
	}

	for _, l := range listens {
		out = append(out, confdoc.ListenEntry{
			Address: l.Address,
			Port:    l.Port,
		})
	}

	return out
}

// Devices upserts new device records into the device document, keyed by
// device id. With keepExisting false every existing device entry is removed
// first; the reserved global block is never touched either way. For each
// record the driver and port are set, and the description only when
// non-empty; entries are created when absent and overwritten field by field
// when present, so the operation is idempotent.
func Devices(doc *confdoc.DeviceDoc, devices []records.Device, keepExisting bool) {
	if !keepExisting {
		doc.RemoveDevices()
	}

	for _, dev := range devices {
		doc.SetDriver(dev.ID, dev.Driver)
		doc.SetPort(dev.ID, dev.Port)
		if dev.Description != "" {
			doc.SetDescription(dev.ID, dev.Description)
		}
	}
}

package confdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMonitors_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	doc, err := LoadMonitors(filepath.Join(t.TempDir(), MonitorFile))
	require.NoError(t, err)
	assert.Empty(t, doc.Monitors)
}

func TestMonitorDoc_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := &MonitorDoc{Monitors: []MonitorEntry{
		{UPS: "ups1", Host: "host", Port: 9999, PowerValue: 1, User: "u", Password: "p", Master: true},
		{UPS: "ups2", Host: "other", PowerValue: 2, User: "u2", Password: "p2"},
	}}

	path := filepath.Join(t.TempDir(), MonitorFile)
	require.NoError(t, doc.Save(path))

	loaded, err := LoadMonitors(path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc.Monitors, loaded.Monitors); diff != "" {
		t.Fatalf("monitor round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMonitors_ParseError(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, MonitorFile, "monitor {\n")

	_, err := LoadMonitors(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestListenDoc_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := &ListenDoc{Listens: []ListenEntry{
		{Address: "localhost"},
		{Address: "::1", Port: 3493},
	}}

	path := filepath.Join(t.TempDir(), ListenFile)
	require.NoError(t, doc.Save(path))

	loaded, err := LoadListens(path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc.Listens, loaded.Listens); diff != "" {
		t.Fatalf("listen round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDaemonDoc(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DaemonFile)

	doc := &DaemonDoc{Mode: "standalone"}
	require.NoError(t, doc.Save(path))

	loaded, err := LoadDaemon(path)
	require.NoError(t, err)
	assert.Equal(t, "standalone", loaded.Mode)
	assert.True(t, loaded.Configured())

	loaded.Mode = "none"
	assert.False(t, loaded.Configured())

	empty, err := LoadDaemon(filepath.Join(t.TempDir(), DaemonFile))
	require.NoError(t, err)
	assert.False(t, empty.Configured())
}

func TestDeviceDoc_UpsertAndRead(t *testing.T) {
	t.Parallel()

	doc, err := LoadDevices(filepath.Join(t.TempDir(), DeviceFile))
	require.NoError(t, err)

	doc.SetDriver("ups1", "usbhid-ups")
	doc.SetPort("ups1", "auto")
	doc.SetDescription("ups1", "rack")

	devices, err := doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, DeviceEntry{ID: "ups1", Driver: "usbhid-ups", Port: "auto", Description: "rack"}, devices[0])

	// Overwriting keys updates the existing block instead of adding one.
	doc.SetDriver("ups1", "snmp-ups")
	devices, err = doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "snmp-ups", devices[0].Driver)
}

func TestDeviceDoc_SurgicalEditKeepsGlobalBlock(t *testing.T) {
	t.Parallel()

	const src = `global {
  max_retries = 3
  pollfreq    = 30
}

device "ups1" {
  driver = "usbhid-ups"
  port   = "auto"
}
`
	path := writeFixture(t, DeviceFile, src)

	doc, err := LoadDevices(path)
	require.NoError(t, err)

	doc.RemoveDevices()
	doc.SetDriver("ups2", "snmp-ups")
	doc.SetPort("ups2", "10.0.0.5")
	require.NoError(t, doc.Save(path))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "global {")
	assert.Contains(t, string(out), "max_retries")
	assert.Contains(t, string(out), "pollfreq")
	assert.NotContains(t, string(out), "ups1")
	assert.Contains(t, string(out), `device "ups2"`)
}

func TestDeviceDoc_RoundTripThroughDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DeviceFile)

	doc, err := LoadDevices(path)
	require.NoError(t, err)
	doc.SetDriver("a", "drv")
	doc.SetPort("a", "auto")
	require.NoError(t, doc.Save(path))

	loaded, err := LoadDevices(path)
	require.NoError(t, err)
	devices, err := loaded.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "drv", devices[0].Driver)
	assert.Empty(t, devices[0].Description)
}

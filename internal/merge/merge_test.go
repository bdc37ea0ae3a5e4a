package merge

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/upsconf/internal/confdoc"
	"github.com/vk/upsconf/internal/records"
)

func TestMonitors_Replace(t *testing.T) {
	t.Parallel()

	existing := []confdoc.MonitorEntry{{UPS: "old", Host: "h", PowerValue: 1}}
	incoming := []records.Monitor{
		{UPS: "a", Host: "h1", Port: 1, PowerValue: 1, User: "u", Password: "p", IsMaster: true},
		{UPS: "b", Host: "h2", PowerValue: 2, User: "u", Password: "p"},
	}

	out := Monitors(existing, incoming, false)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].UPS)
	assert.True(t, out[0].Master)
	assert.Equal(t, "b", out[1].UPS)
}

func TestMonitors_Append(t *testing.T) {
	t.Parallel()

	existing := []confdoc.MonitorEntry{{UPS: "old", Host: "h", PowerValue: 1}}
	incoming := []records.Monitor{{UPS: "new", Host: "h2", PowerValue: 2}}

	out := Monitors(existing, incoming, true)

	require.Len(t, out, 2)
	assert.Equal(t, "old", out[0].UPS)
	assert.Equal(t, "new", out[1].UPS)
}

func TestListens_ReplaceAndAppend(t *testing.T) {
	t.Parallel()

	existing := []confdoc.ListenEntry{{Address: "127.0.0.1", Port: 3493}}
	incoming := []records.ListenAddress{{Address: "::1"}}

	replaced := Listens(existing, incoming, false)
	require.Len(t, replaced, 1)
	assert.Equal(t, "::1", replaced[0].Address)

	appended := Listens(existing, incoming, true)
	require.Len(t, appended, 2)
	assert.Equal(t, "127.0.0.1", appended[0].Address)
	assert.Equal(t, "::1", appended[1].Address)
}

func loadDeviceDoc(t *testing.T, src string) *confdoc.DeviceDoc {
	t.Helper()
	doc, err := confdoc.ParseDevices([]byte(src), filepath.Join(t.TempDir(), confdoc.DeviceFile))
	require.NoError(t, err)
	return doc
}

const twoDevices = `device "A" {
  driver = "d1"
  port   = "p1"
}

device "B" {
  driver = "d1"
  port   = "p1"
}
`

func TestDevices_UpsertKeepExisting(t *testing.T) {
	t.Parallel()

	doc := loadDeviceDoc(t, twoDevices)

	Devices(doc, []records.Device{{ID: "A", Driver: "d2", Port: "p2"}}, true)

	devices, err := doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	// A's fields are overwritten in place, B is untouched, nothing is
	// duplicated.
	assert.Equal(t, confdoc.DeviceEntry{ID: "A", Driver: "d2", Port: "p2"}, devices[0])
	assert.Equal(t, confdoc.DeviceEntry{ID: "B", Driver: "d1", Port: "p1"}, devices[1])
}

func TestDevices_ReplaceRemovesOthers(t *testing.T) {
	t.Parallel()

	doc := loadDeviceDoc(t, twoDevices)

	Devices(doc, []records.Device{{ID: "A", Driver: "d2", Port: "p2"}}, false)

	devices, err := doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, confdoc.DeviceEntry{ID: "A", Driver: "d2", Port: "p2"}, devices[0])
}

func TestDevices_ReplaceKeepsGlobalBlock(t *testing.T) {
	t.Parallel()

	doc := loadDeviceDoc(t, `global {
  pollfreq = 30
}

device "A" {
  driver = "d1"
  port   = "p1"
}
`)

	Devices(doc, []records.Device{{ID: "B", Driver: "d2", Port: "p2"}}, false)

	devices, err := doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "B", devices[0].ID)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteTo(&buf))
	assert.Contains(t, buf.String(), "pollfreq")
	assert.NotContains(t, buf.String(), `device "A"`)
}

func TestDevices_DescriptionOnlyWhenNonEmpty(t *testing.T) {
	t.Parallel()

	doc := loadDeviceDoc(t, "")

	Devices(doc, []records.Device{
		{ID: "A", Driver: "d", Port: "p"},
		{ID: "B", Driver: "d", Port: "p", Description: "rack"},
	}, false)

	devices, err := doc.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Empty(t, devices[0].Description)
	assert.Equal(t, "rack", devices[1].Description)
}

func TestDevices_UpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := loadDeviceDoc(t, "")
	rec := []records.Device{{ID: "A", Driver: "d", Port: "p", Description: "rack"}}

	Devices(doc, rec, true)
	once, err := doc.Devices()
	require.NoError(t, err)

	Devices(doc, rec, true)
	twice, err := doc.Devices()
	require.NoError(t, err)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second upsert changed state (-once +twice):\n%s", diff)
	}
	require.Len(t, twice, 1)
}

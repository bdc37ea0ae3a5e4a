package confdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// DeviceFile is the document name for the device entries.
const DeviceFile = "device.hcl"

// DeviceEntry is one labeled device block in device.hcl.
type DeviceEntry struct {
	ID          string `hcl:"id,label"`
	Driver      string `hcl:"driver,optional"`
	Port        string `hcl:"port,optional"`
	Description string `hcl:"description,optional"`
}

// deviceSchema is the decode target for validating and reading device.hcl.
// The global block is reserved for daemon-wide settings the tool does not
// manage; its contents are opaque here.
type deviceSchema struct {
	Global *struct {
		Remain hcl.Body `hcl:",remain"`
	} `hcl:"global,block"`
	Devices []DeviceEntry `hcl:"device,block"`
}

// DeviceDoc is the device document. Unlike the list documents it is edited
// in place on the parsed source, so the global block and any formatting
// outside the managed device blocks survive a rewrite.
type DeviceDoc struct {
	name string
	file *hclwrite.File
}

// ParseDevices parses a device document from source bytes. The source is
// validated against the device schema before the editable form is built.
func ParseDevices(src []byte, filename string) (*DeviceDoc, error) {
	var raw deviceSchema
	if err := decode(src, filename, &raw); err != nil {
		return nil, err
	}

	file, diags := hclwrite.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	return &DeviceDoc{name: filename, file: file}, nil
}

// LoadDevices reads the device document at path. A missing file yields an
// empty document.
func LoadDevices(path string) (*DeviceDoc, error) {
	src, found, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &DeviceDoc{name: path, file: hclwrite.NewEmptyFile()}, nil
	}
	return ParseDevices(src, path)
}

// Devices returns the current device entries in document order.
func (d *DeviceDoc) Devices() ([]DeviceEntry, error) {
	var raw deviceSchema
	if err := decode(d.file.Bytes(), d.name, &raw); err != nil {
		return nil, err
	}
	return raw.Devices, nil
}

// RemoveDevices deletes every device block. The global block is reserved
// and always kept.
func (d *DeviceDoc) RemoveDevices() {
	body := d.file.Body()
	for _, block := range body.Blocks() {
		if block.Type() == "device" {
			body.RemoveBlock(block)
		}
	}
}

// SetDriver sets the driver of the device with the given id, creating the
// entry if absent.
func (d *DeviceDoc) SetDriver(id, driver string) {
	d.deviceBody(id).SetAttributeValue("driver", cty.StringVal(driver))
}

// SetPort sets the port of the device with the given id, creating the
// entry if absent.
func (d *DeviceDoc) SetPort(id, port string) {
	d.deviceBody(id).SetAttributeValue("port", cty.StringVal(port))
}

// SetDescription sets the description of the device with the given id,
// creating the entry if absent.
func (d *DeviceDoc) SetDescription(id, description string) {
	d.deviceBody(id).SetAttributeValue("description", cty.StringVal(description))
}

// deviceBody returns the body of the device block labeled id, appending a
// new block when none exists yet.
func (d *DeviceDoc) deviceBody(id string) *hclwrite.Body {
	body := d.file.Body()
	if block := body.FirstMatchingBlock("device", []string{id}); block != nil {
		return block.Body()
	}

	if len(body.Blocks()) > 0 || len(body.Attributes()) > 0 {
		body.AppendNewline()
	}
	return body.AppendNewBlock("device", []string{id}).Body()
}

// WriteTo renders the document as HCL to the given writer.
func (d *DeviceDoc) WriteTo(w io.Writer) error {
	_, err := d.file.WriteTo(w)
	return err
}

// Save writes the document to path, replacing any previous content.
func (d *DeviceDoc) Save(path string) error {
	if err := os.WriteFile(path, d.file.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

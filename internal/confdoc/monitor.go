package confdoc

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// MonitorFile is the document name for the monitor list.
const MonitorFile = "monitor.hcl"

// MonitorEntry is one monitor block in monitor.hcl.
type MonitorEntry struct {
	UPS        string `hcl:"ups"`
	Host       string `hcl:"host"`
	Port       uint16 `hcl:"port,optional"`
	PowerValue uint   `hcl:"power_value"`
	User       string `hcl:"user"`
	Password   string `hcl:"password"`
	Master     bool   `hcl:"master,optional"`
}

// MonitorDoc is the ordered monitor list persisted in monitor.hcl.
type MonitorDoc struct {
	Monitors []MonitorEntry
}

// ParseMonitors decodes a monitor document from source bytes.
func ParseMonitors(src []byte, filename string) (*MonitorDoc, error) {
	var raw struct {
		Monitors []MonitorEntry `hcl:"monitor,block"`
	}
	if err := decode(src, filename, &raw); err != nil {
		return nil, err
	}
	return &MonitorDoc{Monitors: raw.Monitors}, nil
}

// LoadMonitors reads the monitor document at path. A missing file yields an
// empty document.
func LoadMonitors(path string) (*MonitorDoc, error) {
	src, found, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &MonitorDoc{}, nil
	}
	return ParseMonitors(src, path)
}

func (d *MonitorDoc) render() *hclwrite.File {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for i, m := range d.Monitors {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("monitor", nil).Body()
		block.SetAttributeValue("ups", cty.StringVal(m.UPS))
		block.SetAttributeValue("host", cty.StringVal(m.Host))
		if m.Port != 0 {
			block.SetAttributeValue("port", cty.NumberUIntVal(uint64(m.Port)))
		}
		block.SetAttributeValue("power_value", cty.NumberUIntVal(uint64(m.PowerValue)))
		block.SetAttributeValue("user", cty.StringVal(m.User))
		block.SetAttributeValue("password", cty.StringVal(m.Password))
		block.SetAttributeValue("master", cty.BoolVal(m.Master))
	}

	return file
}

// WriteTo renders the document as HCL to the given writer.
func (d *MonitorDoc) WriteTo(w io.Writer) error {
	_, err := d.render().WriteTo(w)
	return err
}

// Save writes the document to path, replacing any previous content.
func (d *MonitorDoc) Save(path string) error {
	return saveFile(path, d.render())
}

package confdoc

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// DaemonFile is the document name holding the daemon run mode.
const DaemonFile = "daemon.hcl"

// DaemonDoc is the daemon configuration persisted in daemon.hcl. It is the
// source of truth for whether the tool considers the system configured.
type DaemonDoc struct {
	Mode string
}

// ParseDaemon decodes a daemon document from source bytes.
func ParseDaemon(src []byte, filename string) (*DaemonDoc, error) {
	var raw struct {
		Mode string `hcl:"mode,optional"`
	}
	if err := decode(src, filename, &raw); err != nil {
		return nil, err
	}
	return &DaemonDoc{Mode: raw.Mode}, nil
}

// LoadDaemon reads the daemon document at path. A missing file yields an
// empty document.
func LoadDaemon(path string) (*DaemonDoc, error) {
	src, found, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &DaemonDoc{}, nil
	}
	return ParseDaemon(src, path)
}

// Configured reports whether a run mode is set and is not "none".
func (d *DaemonDoc) Configured() bool {
	return d.Mode != "" && d.Mode != "none"
}

func (d *DaemonDoc) render() *hclwrite.File {
	file := hclwrite.NewEmptyFile()
	file.Body().SetAttributeValue("mode", cty.StringVal(d.Mode))
	return file
}

// WriteTo renders the document as HCL to the given writer.
func (d *DaemonDoc) WriteTo(w io.Writer) error {
	_, err := d.render().WriteTo(w)
	return err
}

// Save writes the document to path, replacing any previous content.
func (d *DaemonDoc) Save(path string) error {
	return saveFile(path, d.render())
}

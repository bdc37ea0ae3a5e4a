package confdoc

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// ListenFile is the document name for the listen-address list.
const ListenFile = "listen.hcl"

// ListenEntry is one listen block in listen.hcl. Port 0 means the daemon
// default.
type ListenEntry struct {
	Address string `hcl:"address"`
	Port    uint16 `hcl:"port,optional"`
}

// ListenDoc is the ordered listen-address list persisted in listen.hcl.
type ListenDoc struct {
	Listens []ListenEntry
}

// ParseListens decodes a listen document from source bytes.
func ParseListens(src []byte, filename string) (*ListenDoc, error) {
	var raw struct {
		Listens []ListenEntry `hcl:"listen,block"`
	}
	if err := decode(src, filename, &raw); err != nil {
		return nil, err
	}
	return &ListenDoc{Listens: raw.Listens}, nil
}

// LoadListens reads the listen document at path. A missing file yields an
// empty document.
func LoadListens(path string) (*ListenDoc, error) {
	src, found, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ListenDoc{}, nil
	}
	return ParseListens(src, path)
}

func (d *ListenDoc) render() *hclwrite.File {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for i, l := range d.Listens {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("listen", nil).Body()
		block.SetAttributeValue("address", cty.StringVal(l.Address))
		if l.Port != 0 {
			block.SetAttributeValue("port", cty.NumberUIntVal(uint64(l.Port)))
		}
	}

	return file
}

// WriteTo renders the document as HCL to the given writer.
func (d *ListenDoc) WriteTo(w io.Writer) error {
	_, err := d.render().WriteTo(w)
	return err
}

// Save writes the document to path, replacing any previous content.
func (d *ListenDoc) Save(path string) error {
	return saveFile(path, d.render())
}

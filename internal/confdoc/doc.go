// Package confdoc reads and writes the persisted HCL configuration
// documents of the configuration directory: monitor.hcl, listen.hcl,
// device.hcl and daemon.hcl. A missing file loads as an empty document;
// a file that exists but does not parse is an error. The device document
// is edited surgically so content the tool does not manage, such as the
// global block, survives a round trip.
package confdoc

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// decode parses src as HCL and decodes the body into target.
func decode(src []byte, filename string, target any) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %w", filename, diags)
	}

	if diags := gohcl.DecodeBody(file.Body, nil, target); diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	return nil
}

// readFile returns the file contents, with found=false for a missing file.
func readFile(path string) (src []byte, found bool, err error) {
	src, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return src, true, nil
}

// saveFile writes a generated HCL file, replacing any previous content.
func saveFile(path string, file *hclwrite.File) error {
	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

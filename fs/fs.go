// Package fs reads import files from and writes exports to the local filesystem.
package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pacchoferes/dispatch"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw import bytes to text. A leading UTF-8 byte order
// mark is dropped; input that is not valid UTF-8 is rejected.
func DecodeText(b []byte) (string, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return "", dispatch.Errorf(dispatch.EINVALID, "import file is not UTF-8 text")
	}
	return string(b), nil
}

// ReadImportFile reads and decodes the import file at path.
func ReadImportFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(b)
}

// FormatBoard formats addresses in the import format: one block per driver,
// in order of first appearance, separated by blank lines. Addresses without
// a driver cannot be expressed in that format and are counted in skipped.
func FormatBoard(addresses []*dispatch.Address) (text string, skipped int) {
	var order []string
	groups := make(map[string][]string)
	for _, a := range addresses {
		if a.Driver == "" {
			skipped++
			continue
		}
		if _, ok := groups[a.Driver]; !ok {
			order = append(order, a.Driver)
		}
		groups[a.Driver] = append(groups[a.Driver], a.Address)
	}

	var b strings.Builder
	for i, driver := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(driver)
		b.WriteString("\n")
		for _, addr := range groups[driver] {
			b.WriteString(addr)
			b.WriteString("\n")
		}
	}
	return b.String(), skipped
}

// WriteExport writes text to path, creating parent directories.
func WriteExport(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

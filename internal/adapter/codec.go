// Package adapter contains storage and serialization adapters for the
// mergecov CLI.
package adapter

import (
	"bytes"
	"encoding/xml"
	"fmt"

	m "github.com/mergecov/mergecov/internal/model"
)

// xmlDeclaration matches the declaration other Cobertura tooling emits for
// UTF-8 documents.
const xmlDeclaration = "<?xml version='1.0' encoding='utf-8'?>\n"

// indent is the pretty-print step for serialized reports.
const indent = "  "

// DecodeReport parses raw Cobertura XML into the model tree. A document that
// does not match the expected shape is a hard error; leaf attribute values
// are not validated here.
func DecodeReport(data []byte) (*m.CoverageReport, error) {
	var report m.CoverageReport
	if err := xml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("malformed cobertura document: %w", err)
	}

	return &report, nil
}

// EncodeReport serializes a report as a pretty-printed UTF-8 document
// starting with an XML declaration.
func EncodeReport(report *m.CoverageReport) ([]byte, error) {
	body, err := xml.MarshalIndent(report, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	var buf bytes.Buffer

	buf.WriteString(xmlDeclaration)
	buf.Write(body)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

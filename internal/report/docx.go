// internal/report/docx.go
package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
	"time"
)

// The generated document is a minimal WordprocessingML package: content
// types, package rels, document rels, a styles part and the document body.
// Part order and timestamps are fixed so the same input produces the same
// bytes.

var fixedModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:rPr><w:b/><w:sz w:val="40"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>
</w:styles>`

// docBuilder accumulates WordprocessingML body content.
type docBuilder struct {
	body strings.Builder
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (b *docBuilder) para(style, text string) {
	b.body.WriteString(`<w:p>`)
	if style != "" {
		b.body.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	}
	if text != "" {
		b.body.WriteString(`<w:r><w:t xml:space="preserve">` + escape(text) + `</w:t></w:r>`)
	}
	b.body.WriteString(`</w:p>`)
}

func (b *docBuilder) table(header []string, rows [][]string) {
	b.body.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/>` +
		`<w:left w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/>` +
		`<w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/>` +
		`</w:tblBorders></w:tblPr>`)
	b.tableRow(header, true)
	for _, row := range rows {
		b.tableRow(row, false)
	}
	b.body.WriteString(`</w:tbl>`)
}

func (b *docBuilder) tableRow(cells []string, bold bool) {
	b.body.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.body.WriteString(`<w:tc><w:p><w:r>`)
		if bold {
			b.body.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		b.body.WriteString(`<w:t xml:space="preserve">` + escape(cell) + `</w:t></w:r></w:p></w:tc>`)
	}
	b.body.WriteString(`</w:tr>`)
}

func (b *docBuilder) document() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + b.body.String() + `</w:body></w:document>`
}

// pack writes the parts into a zip archive in fixed order.
func pack(documentXML string) ([]byte, error) {
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		hdr := &zip.FileHeader{Name: part.name, Method: zip.Deflate, Modified: fixedModTime}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

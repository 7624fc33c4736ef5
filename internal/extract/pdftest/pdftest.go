// Package pdftest builds minimal single-font PDF documents for tests. The
// files are complete and parse with a strict reader: object offsets in the
// xref table are computed from the buffer, not hard-coded.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// WithText returns a PDF with one page per entry in pageTexts, each page
// drawing its text in Helvetica.
func WithText(pageTexts ...string) []byte {
	return build(pageTexts, true)
}

// Blank returns a PDF with a single page that has no content stream, so text
// extraction yields nothing.
func Blank() []byte {
	return build([]string{""}, false)
}

func build(pageTexts []string, withContents bool) []byte {
	var buf bytes.Buffer
	offsets := []int{0} // object 0 is the free-list head

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets)-1, body)
	}

	buf.WriteString("%PDF-1.4\n")

	// 1: catalog, 2: page tree, 3: font, then page/content pairs.
	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pageTexts))
	firstPage := 4
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", firstPage+2*i)
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageTexts)))
	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, text := range pageTexts {
		pageNum := firstPage + 2*i
		if withContents {
			writeObj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", pageNum+1))
			stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escape(text))
			writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		} else {
			writeObj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
			writeObj("<< /Length 0 >>\nstream\n\nendstream")
		}
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets), xrefOffset)

	return buf.Bytes()
}

func escape(text string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(text)
}

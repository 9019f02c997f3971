// Package analysis extracts text from uploaded documents and runs stateless
// text analytics over it. Nothing here persists results.
package analysis

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/unicode/norm"

	"github.com/campuslex/campuslex/internal/shared"
)

// ExtractText pulls plain text out of an uploaded document. fileType is the
// client-supplied discriminator; anything but "pdf" or "docx" fails with
// shared.ErrUnsupportedFileType. Output is NFC-normalized.
func ExtractText(data []byte, fileType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(fileType)) {
	case "pdf":
		return extractPDF(data)
	case "docx":
		return extractDOCX(data)
	default:
		return "", shared.ErrUnsupportedFileType
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("analysis: open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("analysis: extract pdf text: %w", err)
	}
	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("analysis: read pdf text: %w", err)
	}
	return norm.NFC.String(buf.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("analysis: open docx: %w", err)
	}
	defer doc.Close()
	text, err := docxText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("analysis: extract docx text: %w", err)
	}
	return norm.NFC.String(text), nil
}

// docxText walks WordprocessingML and collects the text runs, one line per
// paragraph.
func docxText(document string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(document))
	var (
		buf   strings.Builder
		inRun bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.CharData:
			if inRun {
				buf.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String(), nil
}

// Package extract turns uploaded advertisement files into plain text.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrUnsupportedFormat is returned for files whose text cannot be read,
	// such as images.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyFile is returned when the upload has no content.
	ErrEmptyFile = errors.New("file is empty")
)

var imageExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".bmp": {}, ".tiff": {},
}

var htmlPolicy = bluemonday.StrictPolicy()

// Text extracts readable text from data, choosing a reader by the extension
// of filename.
func Text(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".html", ".htm":
		return HTMLText(string(data)), nil
	default:
		return strings.ToValidUTF8(string(data), ""), nil
	}
}

// HTMLText strips markup from s and decodes entities.
func HTMLText(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlPolicy.Sanitize(s)))
}

// maxPDFPages caps how many pages are read from one upload.
const maxPDFPages = 500

// pdfText reads at most maxPDFPages pages and reports reader panics as errors.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	n := min(r.NumPage(), maxPDFPages)
	var pages []string
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() || p.V.Key("Type").Name() != "Page" {
			continue
		}
		// Unreadable pages count as empty.
		pt, err := p.GetPlainText(nil)
		if err != nil {
			pt = ""
		}
		pages = append(pages, strings.TrimSpace(pt))
	}
	return strings.TrimSpace(strings.Join(pages, "\n\n")), nil
}

// docxText reads word/document.xml and joins paragraphs with blank lines.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("open docx: word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open docx body: %w", err)
	}
	defer rc.Close()

	var (
		paragraphs []string
		b          strings.Builder
		inText     bool
	)
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, b.String())
				b.Reset()
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	if b.Len() > 0 {
		paragraphs = append(paragraphs, b.String())
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n\n")), nil
}

package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// UnsupportedFormatText is stored in place of real content when a scheme file
// is neither a PDF nor a DOCX. It is a placeholder, not an error.
const UnsupportedFormatText = "Unsupported file format"

// ErrMalformedDocument marks input bytes the PDF or DOCX parser could not
// read. Callers must handle it explicitly; it never carries partial text.
var ErrMalformedDocument = errors.New("malformed document")

// ExtractText dispatches on the filename extension and returns the plain-text
// content of the document. Extensions other than .pdf and .docx yield
// UnsupportedFormatText with a nil error.
func ExtractText(data []byte, filename string) (string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return ConvertPDFToText(data)
	case strings.HasSuffix(lower, ".docx"):
		return ConvertDOCXToText(data)
	default:
		return UnsupportedFormatText, nil
	}
}

// ConvertPDFToText concatenates the text of every page in page order, with no
// separator beyond what each page naturally contains. The document structure
// is validated with pdfcpu before extraction so corrupt files fail cleanly.
func ConvertPDFToText(data []byte) (string, error) {
	if _, err := api.PageCount(bytes.NewReader(data), nil); err != nil {
		return "", fmt.Errorf("%w: invalid pdf: %v", ErrMalformedDocument, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open pdf: %v", ErrMalformedDocument, err)
	}

	var text strings.Builder
	for pageNumber := 1; pageNumber <= reader.NumPage(); pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: failed to extract text from page %d: %v", ErrMalformedDocument, pageNumber, err)
		}
		text.WriteString(content)
	}
	return text.String(), nil
}

// ConvertDOCXToText walks the paragraphs of word/document.xml in order and
// concatenates each paragraph's run text followed by a newline.
func ConvertDOCXToText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx package: %v", ErrMalformedDocument, err)
	}

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("%w: docx package has no word/document.xml", ErrMalformedDocument)
	}

	body, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("%w: failed to open word/document.xml: %v", ErrMalformedDocument, err)
	}
	defer body.Close()

	var text strings.Builder
	var paragraph strings.Builder
	decoder := xml.NewDecoder(body)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: failed to parse word/document.xml: %v", ErrMalformedDocument, err)
		}
		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Local == "t" {
				var run string
				if err := decoder.DecodeElement(&run, &element); err != nil {
					return "", fmt.Errorf("%w: failed to decode text run: %v", ErrMalformedDocument, err)
				}
				paragraph.WriteString(run)
			}
		case xml.EndElement:
			if element.Name.Local == "p" {
				text.WriteString(paragraph.String())
				text.WriteString("\n")
				paragraph.Reset()
			}
		}
	}
	return text.String(), nil
}

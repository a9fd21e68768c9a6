package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// File is an opened DOCX container. The original zip payload is kept in
// memory so that saving copies every untouched part byte for byte; only
// the parsed parts are re-serialized.
type File struct {
	path   string
	raw    []byte
	logger *zap.Logger

	Document *WordDocument
	Styles   *Styles

	stylesModified bool
}

// Open reads a DOCX file fully into memory and parses its document and
// styles parts.
func Open(path string, logger *zap.Logger) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a valid DOCX container: %w", err)
	}

	f := &File{
		path:   path,
		raw:    data,
		logger: logger,
	}

	docData, err := readZipPart(zipReader, documentPart)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", documentPart, err)
	}

	var doc WordDocument
	if err := xml.Unmarshal(docData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", documentPart, err)
	}
	f.Document = &doc

	// styles.xml is optional; a document without it simply gets no
	// style rebinding or style-level numbering cleanup.
	if stylesData, err := readZipPart(zipReader, stylesPart); err == nil {
		var styles Styles
		if err := xml.Unmarshal(stylesData, &styles); err != nil {
			logger.Warn("failed to parse styles part, continuing without it",
				zap.String("file", path),
				zap.Error(err))
		} else {
			f.Styles = &styles
		}
	}

	logger.Debug("opened document",
		zap.String("file", path),
		zap.Int("paragraphs", len(doc.Body.Paragraphs)),
		zap.Bool("hasStyles", f.Styles != nil))

	return f, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// MarkStylesModified flags the styles part for re-serialization on save.
func (f *File) MarkStylesModified() {
	f.stylesModified = true
}

// FindStyleID returns the styleId of the paragraph style whose display
// name matches name, or "" if the document defines no such style.
func (f *File) FindStyleID(name string) string {
	if f.Styles == nil {
		return ""
	}
	for _, s := range f.Styles.Styles {
		if s.Type != "" && s.Type != "paragraph" {
			continue
		}
		if s.Name != nil && s.Name.Val == name {
			return s.StyleID
		}
	}
	return ""
}

// StyleDisplayName resolves a styleId (as referenced by w:pStyle) to
// the style's display name. Falls back to the id itself when the
// document defines no such style.
func (f *File) StyleDisplayName(styleID string) string {
	if styleID == "" || f.Styles == nil {
		return styleID
	}
	for _, s := range f.Styles.Styles {
		if s.StyleID == styleID && s.Name != nil && s.Name.Val != "" {
			return s.Name.Val
		}
	}
	return styleID
}

// SaveAs writes the (possibly modified) document to path. The output is
// assembled in a temporary file next to the destination and renamed into
// place, so a failure never leaves a partial file behind.
func (f *File) SaveAs(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".docstyler-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}
	tmpPath := tmp.Name()

	if err := f.writeZip(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary output: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	f.logger.Debug("saved document", zap.String("file", path))
	return nil
}

// writeZip assembles the output container: the parsed parts are
// re-serialized, everything else is copied from the original archive.
func (f *File) writeZip(w io.Writer) error {
	zipReader, err := zip.NewReader(bytes.NewReader(f.raw), int64(len(f.raw)))
	if err != nil {
		return err
	}

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	for _, entry := range zipReader.File {
		switch {
		case entry.Name == documentPart:
			if err := writeXMLEntry(zipWriter, documentPart, f.Document); err != nil {
				return err
			}
		case entry.Name == stylesPart && f.stylesModified && f.Styles != nil:
			if err := writeXMLEntry(zipWriter, stylesPart, f.Styles); err != nil {
				return err
			}
		default:
			if err := copyZipEntry(zipWriter, entry); err != nil {
				return fmt.Errorf("failed to copy %s: %w", entry.Name, err)
			}
		}
	}

	return zipWriter.Close()
}

func writeXMLEntry(zw *zip.Writer, name string, v interface{}) error {
	data, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	out, err := zw.Create(name)
	if err != nil {
		return err
	}

	declaration := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	if _, err := out.Write([]byte(declaration)); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func copyZipEntry(zw *zip.Writer, entry *zip.File) error {
	if entry.FileInfo().IsDir() {
		_, err := zw.Create(entry.Name + "/")
		return err
	}

	reader, err := entry.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, err := zw.Create(entry.Name)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, reader)
	return err
}

func readZipPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, entry := range zr.File {
		if entry.Name != name {
			continue
		}
		reader, err := entry.Open()
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	}
	return nil, fmt.Errorf("part %s not found", name)
}

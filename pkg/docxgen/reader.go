package docxgen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// PackageReader gives access to the entries of a package. It does not parse
// the body back into the model.
type PackageReader struct {
	reader *zip.Reader
	parts  map[string]*zip.File
}

// PackageEntry describes one entry of a package
type PackageEntry struct {
	Name           string
	Method         uint16
	Size           uint64
	CompressedSize uint64
}

// NewPackageReader indexes the entries of a zip container
func NewPackageReader(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &PackageReader{
		reader: zipReader,
		parts:  make(map[string]*zip.File, len(zipReader.File)),
	}
	for _, file := range zipReader.File {
		pr.parts[file.Name] = file
	}

	if _, ok := pr.parts[DocumentPart]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", DocumentPart)
	}
	return pr, nil
}

// ReadPackage opens a package held in memory
func ReadPackage(data []byte) (*PackageReader, error) {
	return NewPackageReader(bytes.NewReader(data), int64(len(data)))
}

// OpenPackage reads a package from disk
func OpenPackage(path string) (*PackageReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open package: %w", err)
	}
	return ReadPackage(data)
}

// Names returns the entry names in archive order
func (pr *PackageReader) Names() []string {
	names := make([]string, 0, len(pr.reader.File))
	for _, file := range pr.reader.File {
		names = append(names, file.Name)
	}
	return names
}

// Entries describes every entry in archive order
func (pr *PackageReader) Entries() []PackageEntry {
	entries := make([]PackageEntry, 0, len(pr.reader.File))
	for _, file := range pr.reader.File {
		entries = append(entries, PackageEntry{
			Name:           file.Name,
			Method:         file.Method,
			Size:           file.UncompressedSize64,
			CompressedSize: file.CompressedSize64,
		})
	}
	return entries
}

// Part returns the content of the named entry
func (pr *PackageReader) Part(name string) ([]byte, error) {
	file, ok := pr.parts[name]
	if !ok {
		return nil, fmt.Errorf("%s not found", name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}

// DocumentXML returns word/document.xml
func (pr *PackageReader) DocumentXML() ([]byte, error) {
	return pr.Part(DocumentPart)
}

// Relationships decodes the package-level relationships
func (pr *PackageReader) Relationships() ([]Relationship, error) {
	content, err := pr.Part(RelationshipsPart)
	if err != nil {
		return nil, err
	}
	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	return rels.Relationship, nil
}

// ContentTypes decodes [Content_Types].xml
func (pr *PackageReader) ContentTypes() (*ContentTypes, error) {
	content, err := pr.Part(ContentTypesPart)
	if err != nil {
		return nil, err
	}
	var ct ContentTypes
	if err := xml.Unmarshal(content, &ct); err != nil {
		return nil, fmt.Errorf("failed to parse content types: %w", err)
	}
	return &ct, nil
}

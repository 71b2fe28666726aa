package docxgen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"

	wml "github.com/benjaminschreck/go-docxgen/pkg/docxgen/xml"
)

// Package entry names
const (
	ContentTypesPart  = "[Content_Types].xml"
	RelationshipsPart = "_rels/.rels"
	DocumentPart      = "word/document.xml"
)

const (
	contentTypesNamespace  = "http://schemas.openxmlformats.org/package/2006/content-types"
	relationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"
	officeDocumentType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	documentContentType    = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

// entryModTime is stamped on every entry so identical documents produce
// identical packages
var entryModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ContentTypes represents [Content_Types].xml
type ContentTypes struct {
	XMLName   xml.Name              `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// ContentTypeDefault maps an extension to a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride maps one part to a content type
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Relationships represents a .rels part
type Relationships struct {
	XMLName      xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationship []Relationship `xml:"Relationship"`
}

// Relationship represents a single relationship
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func packageContentTypes() ContentTypes {
	return ContentTypes{
		Defaults: []ContentTypeDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []ContentTypeOverride{
			{PartName: "/" + DocumentPart, ContentType: documentContentType},
		},
	}
}

func packageRelationships() Relationships {
	return Relationships{
		Relationship: []Relationship{
			{ID: "rId1", Type: officeDocumentType, Target: DocumentPart},
		},
	}
}

func marshalPart(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(wml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type packageEntry struct {
	name    string
	content []byte
}

// entries materialises every part of the package
func (d *Document) entries() ([]packageEntry, error) {
	body, err := Serialize(d)
	if err != nil {
		return nil, err
	}
	contentTypes, err := marshalPart(packageContentTypes())
	if err != nil {
		return nil, NewPackagingError("encode content types", "", err)
	}
	rels, err := marshalPart(packageRelationships())
	if err != nil {
		return nil, NewPackagingError("encode relationships", "", err)
	}
	return []packageEntry{
		{name: ContentTypesPart, content: contentTypes},
		{name: RelationshipsPart, content: rels},
		{name: DocumentPart, content: body},
	}, nil
}

func (d *Document) method() uint16 {
	if d.config.Compression == CompressionStore {
		return zip.Store
	}
	return zip.Deflate
}

func (d *Document) writePackage(w io.Writer, entries []packageEntry) error {
	zw := zip.NewWriter(w)
	for _, entry := range entries {
		header := &zip.FileHeader{
			Name:     entry.name,
			Method:   d.method(),
			Modified: entryModTime,
		}
		fw, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("failed to create entry %s: %w", entry.name, err)
		}
		if _, err := fw.Write(entry.content); err != nil {
			zw.Close()
			return fmt.Errorf("failed to write entry %s: %w", entry.name, err)
		}
		d.logger.Debug("wrote package entry", "entry", entry.name, "bytes", len(entry.content))
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish package: %w", err)
	}
	return nil
}

// Bytes returns the complete package
func (d *Document) Bytes() ([]byte, error) {
	entries, err := d.entries()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := d.writePackage(&buf, entries); err != nil {
		return nil, NewPackagingError("compress", "", err)
	}
	return buf.Bytes(), nil
}

// WriteTo writes the complete package to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), NewPackagingError("write", "", err)
	}
	return int64(n), nil
}

// Save writes the package to Path(), replacing any existing file
func (d *Document) Save() error {
	if d.identity == "" {
		return NewPackagingError("save", "", errors.New("document has no identity"))
	}
	return d.SaveAs(d.Path())
}

// SaveAs writes the package to path, replacing any existing file. The whole
// package is built in memory before the destination is touched.
func (d *Document) SaveAs(path string) error {
	entries, err := d.entries()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.writePackage(&buf, entries); err != nil {
		return NewPackagingError("compress", path, err)
	}
	if err := replaceFile(path, buf.Bytes()); err != nil {
		return err
	}
	d.logger.Info("saved document", "path", path, "blocks", len(d.blocks), "bytes", buf.Len())
	return nil
}

// replaceFile writes data next to path, removes whatever is at path, and
// renames the new file into place. The temporary file never survives a
// failure.
func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return NewPackagingError("create", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return NewPackagingError("write", path, err)
	}
	if err = tmp.Close(); err != nil {
		return NewPackagingError("close", path, err)
	}
	if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
		return NewPackagingError("remove", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return NewPackagingError("rename", path, err)
	}
	return nil
}

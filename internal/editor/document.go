package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DocumentVersion is written into every saved document.
const DocumentVersion = 1

// ErrBadDocument is returned when a document file cannot be understood.
var ErrBadDocument = errors.New("invalid document")

// Document is the on-disk form of a session: the surface and the elements.
// Selection and history are not saved.
type Document struct {
	Version  int       `yaml:"version"`
	Surface  Surface   `yaml:"surface"`
	Elements []Element `yaml:"elements"`
}

// UnmarshalYAML starts from DefaultStyle so fields missing from the file
// keep their defaults and the style stays fully populated.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	type plain Style
	p := plain(DefaultStyle())
	if err := value.Decode(&p); err != nil {
		return err
	}
	p.Opacity = clamp(p.Opacity, 0, 1)
	*s = Style(p)
	return nil
}

// Snapshot builds a Document from the editor's live state.
func (e *Editor) Snapshot() Document {
	return Document{
		Version:  DocumentVersion,
		Surface:  e.surface,
		Elements: e.store.Elements(),
	}
}

// Save writes the editor's document to w.
func (e *Editor) Save(w io.Writer) error {
	return WriteDocument(w, e.Snapshot())
}

// Open reads a document from r and loads it as a fresh session.
func (e *Editor) Open(r io.Reader) error {
	doc, err := ReadDocument(r)
	if err != nil {
		return err
	}
	e.Load(doc.Elements, doc.Surface)
	return nil
}

// WriteDocument encodes doc as YAML.
func WriteDocument(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}

// ReadDocument decodes and normalizes a YAML document: missing or repeated
// ids are replaced, sizes are floored and the surface falls back to the
// default.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: empty file", ErrBadDocument)
		}
		return Document{}, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("%w: unsupported version %d", ErrBadDocument, doc.Version)
	}
	if doc.Surface.W <= 0 || doc.Surface.H <= 0 {
		doc.Surface = DefaultSurface
	}

	seen := make(map[string]bool, len(doc.Elements))
	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.ID == "" || seen[el.ID] {
			el.ID = uuid.NewString()
		}
		seen[el.ID] = true
		el.W = floorSize(el.W)
		el.H = floorSize(el.H)
		if el.Style == (Style{}) {
			el.Style = DefaultStyle()
		}
	}
	doc.Version = DocumentVersion
	if doc.Elements == nil {
		doc.Elements = []Element{}
	}
	return doc, nil
}

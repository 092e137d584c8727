// Package hbm reads and writes NHibernate hbm.xml mapping documents.
package hbm

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

var (
	ErrInvalidDocument = errors.New("hbm: invalid mapping document")
	ErrUnknownElement  = errors.New("hbm: unknown element")
	ErrEmptyDocument   = errors.New("hbm: document has no classes")
)

const indent = "  "

// Marshal renders doc as an indented XML document with a header.
func Marshal(doc *model.HibernateMapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Write(w io.Writer, doc *model.HibernateMapping) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", indent)
	if err := enc.Encode(encodeDocument(doc)); err != nil {
		return errors.Wrap(err, "hbm: encode")
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Unmarshal parses a mapping document. All attributes found become explicit
// values of the returned model. Problems with individual attributes are
// collected and returned together.
func Unmarshal(data []byte) (*model.HibernateMapping, error) {
	return Read(bytes.NewReader(data))
}

func Read(r io.Reader) (*model.HibernateMapping, error) {
	var x hibernateMappingXML
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, errors.Wrapf(ErrInvalidDocument, "%v", err)
	}
	d := &decoder{}
	doc := d.document(&x)
	if err := d.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return doc, nil
}

// FileName is the conventional file name of doc, named after its first class.
func FileName(doc *model.HibernateMapping) (string, error) {
	if doc == nil || len(doc.Classes) == 0 {
		return "", ErrEmptyDocument
	}
	return doc.Classes[0].EntityName() + ".hbm.xml", nil
}

// Equal reports whether a and b render to the same XML.
func Equal(a, b *model.HibernateMapping) (bool, error) {
	diff, err := Diff(a, b)
	return diff == "", err
}

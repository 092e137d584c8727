package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

func readDocument(path string) (*model.HibernateMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := hbm.Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return doc, nil
}

func readDocuments(paths []string) ([]*model.HibernateMapping, error) {
	docs := make([]*model.HibernateMapping, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// errorList flattens aggregated errors for line-by-line output.
func errorList(err error) []error {
	type wrapped interface{ WrappedErrors() []error }
	var w wrapped
	if errors.As(err, &w) {
		return w.WrappedErrors()
	}
	return []error{err}
}

package conventions

import "github.com/krew-solutions/fluent-mapping-go/fluentmap/model"

// Convention is a named rule run over built mappings. A convention only
// writes default values, so anything set explicitly in a class map wins.
type Convention interface {
	Name() string
}

type ClassConvention interface {
	Convention
	ApplyClass(*model.Class)
}

type PropertyConvention interface {
	Convention
	ApplyProperty(*model.Property)
}

type ReferenceConvention interface {
	Convention
	ApplyReference(*model.ManyToOne)
}

type CollectionConvention interface {
	Convention
	ApplyCollection(*model.Collection)
}

type ColumnConvention interface {
	Convention
	ApplyColumn(*model.Column)
}

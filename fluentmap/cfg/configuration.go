package cfg

import (
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/hbm"
)

var ErrDuplicateDocument = errors.New("cfg: document added twice")

// Configuration receives rendered mapping documents. It stands for the ORM
// runtime, which consumes the documents without this package knowing how.
type Configuration interface {
	AddDocument(name string, data []byte) error
}

// InMemoryConfiguration keeps the documents it receives, in order, and the
// names of the classes they map.
type InMemoryConfiguration struct {
	mu        sync.RWMutex
	names     []string
	documents map[string][]byte
	classes   []string
}

func NewInMemoryConfiguration() *InMemoryConfiguration {
	return &InMemoryConfiguration{documents: make(map[string][]byte)}
}

func (c *InMemoryConfiguration) AddDocument(name string, data []byte) error {
	doc, err := hbm.Unmarshal(data)
	if err != nil {
		return errors.Wrapf(err, "document %s", name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.documents[name]; ok {
		return errors.Wrapf(ErrDuplicateDocument, "%s", name)
	}
	c.names = append(c.names, name)
	c.documents[name] = slices.Clone(data)
	for _, class := range doc.Classes {
		c.classes = append(c.classes, class.Name.Get())
	}
	return nil
}

func (c *InMemoryConfiguration) DocumentNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.names)
}

func (c *InMemoryConfiguration) Document(name string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.documents[name]
	return data, ok
}

// ClassNames lists mapped class names in the order documents were added.
func (c *InMemoryConfiguration) ClassNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.classes)
}

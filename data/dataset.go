package data

import "fmt"

// Dataset is the root group of one acquisition or derived data product.
// Beyond the group tree it tracks a source identifier, typically the
// originating file path or acquisition run id.
type Dataset struct {
	Group
	source string
}

// NewDataset creates an empty dataset named name.
func NewDataset(name string) (*Dataset, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	d := &Dataset{}
	d.Group.object = object{name: name}
	d.Group.children = make(map[string]Node)
	return d, nil
}

// Source returns the source identifier.
func (d *Dataset) Source() string { return d.source }

// SetSource records the source identifier.
func (d *Dataset) SetSource(source string) { d.source = source }

// Root returns the dataset's root group.
func (d *Dataset) Root() *Group { return &d.Group }

// Collection is a named set of datasets, the top-level organizational unit
// for related acquisitions.
type Collection struct {
	object
	datasets map[string]*Dataset
	order    []string
}

// NewCollection creates an empty collection.
func NewCollection(name string) (*Collection, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Collection{
		object:   object{name: name},
		datasets: make(map[string]*Dataset),
	}, nil
}

// CreateDataset creates a new dataset in the collection.
// Fails with ErrNameCollision if the name is taken.
func (c *Collection) CreateDataset(name string) (*Dataset, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if _, ok := c.datasets[name]; ok {
		return nil, fmt.Errorf("%w: %q in collection %q", ErrNameCollision, name, c.name)
	}
	d, err := NewDataset(name)
	if err != nil {
		return nil, err
	}
	c.datasets[name] = d
	c.order = append(c.order, name)
	return d, nil
}

// Dataset returns a dataset by name.
func (c *Collection) Dataset(name string) (*Dataset, error) {
	d, ok := c.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in collection %q", ErrNotFound, name, c.name)
	}
	return d, nil
}

// Remove detaches the named dataset and releases its tree.
func (c *Collection) Remove(name string) error {
	d, ok := c.datasets[name]
	if !ok {
		return fmt.Errorf("%w: %q in collection %q", ErrNotFound, name, c.name)
	}
	delete(c.datasets, name)
	c.order = removeString(c.order, name)
	release(&d.Group)
	return nil
}

// Names returns the dataset names in creation order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

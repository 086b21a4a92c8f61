package access

import (
	"errors"
	"fmt"

	vo "repoaccess/internal/domain/access/valueobjects"
)

var (
	ErrEmptyObjectID    = errors.New("object ID cannot be empty")
	ErrEmptyBundleName  = errors.New("bundle name cannot be empty")
	ErrForeignBitstream = errors.New("bitstream does not belong to this bundle")
)

// ObjectKind discriminates the objects policies can be attached to.
type ObjectKind string

const (
	KindItem      ObjectKind = "item"
	KindBitstream ObjectKind = "bitstream"
)

// Target is the object whose access status is computed. Items and
// bitstreams implement it; callers never need to type-switch on them.
type Target interface {
	ID() string
	Kind() ObjectKind
	// Policies returns every policy attached to the object, in storage order.
	Policies() []*ResourcePolicy
	// MetadataValue returns the first value of a metadata field, any language.
	MetadataValue(field string) (string, bool)
	MetadataValues(field string) []string
	// MasterFile returns the file whose policies represent the object:
	// the bitstream itself, or an item's primary/first canonical file.
	MasterFile(canonicalBundle string) *Bitstream
}

// Metadata maps a qualified field name (schema.element[.qualifier]) to its values.
type Metadata map[string][]string

func (m Metadata) First(field string) (string, bool) {
	values := m[field]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (m Metadata) Values(field string) []string {
	values := m[field]
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Item is an archival unit grouping bundles of bitstreams.
type Item struct {
	id           string
	collectionID string
	stage        vo.LifecycleStage
	metadata     Metadata
	policies     []*ResourcePolicy
	bundles      []*Bundle
}

func NewItem(id, collectionID string, stage vo.LifecycleStage) (*Item, error) {
	if id == "" {
		return nil, ErrEmptyObjectID
	}
	if _, err := vo.NewLifecycleStage(stage.String()); err != nil {
		return nil, err
	}
	return &Item{
		id:           id,
		collectionID: collectionID,
		stage:        stage,
		metadata:     Metadata{},
	}, nil
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Kind() ObjectKind {
	return KindItem
}

// CollectionID is the owning collection, empty for orphan workspace items.
func (i *Item) CollectionID() string {
	return i.collectionID
}

func (i *Item) Stage() vo.LifecycleStage {
	return i.stage
}

func (i *Item) Policies() []*ResourcePolicy {
	return append([]*ResourcePolicy(nil), i.policies...)
}

func (i *Item) AddPolicy(p *ResourcePolicy) {
	i.policies = append(i.policies, p)
}

func (i *Item) SetMetadata(field string, values ...string) {
	i.metadata[field] = append([]string(nil), values...)
}

func (i *Item) MetadataValue(field string) (string, bool) {
	return i.metadata.First(field)
}

func (i *Item) MetadataValues(field string) []string {
	return i.metadata.Values(field)
}

// AddBundle creates a named bundle on the item. Bundle names may repeat.
func (i *Item) AddBundle(name string) (*Bundle, error) {
	if name == "" {
		return nil, ErrEmptyBundleName
	}
	b := &Bundle{name: name, item: i}
	i.bundles = append(i.bundles, b)
	return b, nil
}

func (i *Item) Bundles() []*Bundle {
	return append([]*Bundle(nil), i.bundles...)
}

// BundlesNamed returns the bundles with the given name, in creation order.
func (i *Item) BundlesNamed(name string) []*Bundle {
	var out []*Bundle
	for _, b := range i.bundles {
		if b.name == name {
			out = append(out, b)
		}
	}
	return out
}

// MasterFile returns the primary bitstream of the first canonical bundle
// defining one, else the first bitstream of the canonical bundles, else nil.
func (i *Item) MasterFile(canonicalBundle string) *Bitstream {
	bundles := i.BundlesNamed(canonicalBundle)
	for _, b := range bundles {
		if primary := b.Primary(); primary != nil {
			return primary
		}
	}
	for _, b := range bundles {
		if len(b.bitstreams) > 0 {
			return b.bitstreams[0]
		}
	}
	return nil
}

// FindBitstream looks a bitstream up by ID across all bundles.
func (i *Item) FindBitstream(id string) *Bitstream {
	for _, b := range i.bundles {
		for _, bs := range b.bitstreams {
			if bs.id == id {
				return bs
			}
		}
	}
	return nil
}

// Bundle is a named grouping of bitstreams inside an item.
type Bundle struct {
	name       string
	item       *Item
	primary    *Bitstream
	bitstreams []*Bitstream
}

func (b *Bundle) Name() string {
	return b.name
}

func (b *Bundle) Item() *Item {
	return b.item
}

func (b *Bundle) Bitstreams() []*Bitstream {
	return append([]*Bitstream(nil), b.bitstreams...)
}

func (b *Bundle) Primary() *Bitstream {
	return b.primary
}

// AddBitstream appends a new file to the bundle.
func (b *Bundle) AddBitstream(id, name string) (*Bitstream, error) {
	if id == "" {
		return nil, ErrEmptyObjectID
	}
	bs := &Bitstream{id: id, name: name, bundle: b, metadata: Metadata{}}
	b.bitstreams = append(b.bitstreams, bs)
	return bs, nil
}

// SetPrimary marks one of the bundle's own bitstreams as primary.
func (b *Bundle) SetPrimary(bs *Bitstream) error {
	if bs == nil || bs.bundle != b {
		return fmt.Errorf("%w: %s", ErrForeignBitstream, b.name)
	}
	b.primary = bs
	return nil
}

// Bitstream is a single file.
type Bitstream struct {
	id       string
	name     string
	bundle   *Bundle
	metadata Metadata
	policies []*ResourcePolicy
}

func (bs *Bitstream) ID() string {
	return bs.id
}

func (bs *Bitstream) Kind() ObjectKind {
	return KindBitstream
}

func (bs *Bitstream) Name() string {
	return bs.name
}

func (bs *Bitstream) Bundle() *Bundle {
	return bs.bundle
}

// Item returns the owning item, nil for a detached bitstream.
func (bs *Bitstream) Item() *Item {
	if bs.bundle == nil {
		return nil
	}
	return bs.bundle.item
}

func (bs *Bitstream) Policies() []*ResourcePolicy {
	return append([]*ResourcePolicy(nil), bs.policies...)
}

func (bs *Bitstream) AddPolicy(p *ResourcePolicy) {
	bs.policies = append(bs.policies, p)
}

func (bs *Bitstream) SetMetadata(field string, values ...string) {
	bs.metadata[field] = append([]string(nil), values...)
}

func (bs *Bitstream) MetadataValue(field string) (string, bool) {
	return bs.metadata.First(field)
}

func (bs *Bitstream) MetadataValues(field string) []string {
	return bs.metadata.Values(field)
}

// MasterFile of a bitstream is the bitstream itself.
func (bs *Bitstream) MasterFile(string) *Bitstream {
	return bs
}

// isNilTarget catches typed nil pointers hidden in the interface.
func isNilTarget(t Target) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Item:
		return v == nil
	case *Bitstream:
		return v == nil
	}
	return false
}

// Package fixture loads a repository snapshot (items, files, policies and
// the manager directory) from YAML for the command line tools.
package fixture

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"repoaccess/internal/domain/access"
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/infrastructure/permission"
)

type document struct {
	Items     []itemDoc    `yaml:"items"`
	Directory directoryDoc `yaml:"directory"`
}

type directoryDoc struct {
	Groups   map[string][]string `yaml:"groups"`
	Managers map[string][]string `yaml:"managers"`
	Admins   []string            `yaml:"admins"`
}

type itemDoc struct {
	ID         string              `yaml:"id"`
	Collection string              `yaml:"collection"`
	Stage      string              `yaml:"stage"`
	Metadata   map[string][]string `yaml:"metadata"`
	Bundles    []bundleDoc         `yaml:"bundles"`
}

type bundleDoc struct {
	Name       string         `yaml:"name"`
	Primary    string         `yaml:"primary"`
	Bitstreams []bitstreamDoc `yaml:"bitstreams"`
}

type bitstreamDoc struct {
	ID       string              `yaml:"id"`
	Name     string              `yaml:"name"`
	Metadata map[string][]string `yaml:"metadata"`
	Policies []policyDoc         `yaml:"policies"`
}

// policyDoc keeps the stored naming: start_date is the upper validity
// bound and end_date the lower one.
type policyDoc struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Type        string     `yaml:"type"`
	Action      string     `yaml:"action"`
	StartDate   *time.Time `yaml:"start_date"`
	EndDate     *time.Time `yaml:"end_date"`
	Group       string     `yaml:"group"`
}

// Repository is the decoded snapshot.
type Repository struct {
	items       []*access.Item
	itemsByID   map[string]*access.Item
	memberships permission.Memberships
}

func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Repository, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	repo := &Repository{
		itemsByID: make(map[string]*access.Item, len(doc.Items)),
		memberships: permission.Memberships{
			Groups:   doc.Directory.Groups,
			Managers: doc.Directory.Managers,
			Admins:   doc.Directory.Admins,
		},
	}

	for _, d := range doc.Items {
		item, err := buildItem(d)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", d.ID, err)
		}
		if _, dup := repo.itemsByID[item.ID()]; dup {
			return nil, fmt.Errorf("duplicate item %q", item.ID())
		}
		repo.items = append(repo.items, item)
		repo.itemsByID[item.ID()] = item
	}
	return repo, nil
}

func buildItem(d itemDoc) (*access.Item, error) {
	stage := vo.StageArchived
	if d.Stage != "" {
		s, err := vo.NewLifecycleStage(d.Stage)
		if err != nil {
			return nil, err
		}
		stage = s
	}

	item, err := access.NewItem(d.ID, d.Collection, stage)
	if err != nil {
		return nil, err
	}
	for field, values := range d.Metadata {
		item.SetMetadata(field, values...)
	}

	for _, bd := range d.Bundles {
		bundle, err := item.AddBundle(bd.Name)
		if err != nil {
			return nil, err
		}
		for _, bsd := range bd.Bitstreams {
			bs, err := bundle.AddBitstream(bsd.ID, bsd.Name)
			if err != nil {
				return nil, fmt.Errorf("bundle %q: %w", bd.Name, err)
			}
			for field, values := range bsd.Metadata {
				bs.SetMetadata(field, values...)
			}
			for _, pd := range bsd.Policies {
				p, err := buildPolicy(pd, bs.ID())
				if err != nil {
					return nil, fmt.Errorf("bitstream %q: %w", bs.ID(), err)
				}
				bs.AddPolicy(p)
			}
			if bsd.ID == bd.Primary {
				if err := bundle.SetPrimary(bs); err != nil {
					return nil, err
				}
			}
		}
	}
	return item, nil
}

func buildPolicy(d policyDoc, targetID string) (*access.ResourcePolicy, error) {
	kind := vo.KindCustom
	if d.Type != "" {
		k, err := vo.NewPolicyKind(d.Type)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	action := vo.ActionRead
	if d.Action != "" {
		a, err := vo.NewAction(d.Action)
		if err != nil {
			return nil, err
		}
		action = a
	}

	return access.ReconstructResourcePolicy(d.ID, d.Name, d.Description, kind, action, d.StartDate, d.EndDate, d.Group, targetID)
}

func (r *Repository) Items() []*access.Item {
	return append([]*access.Item(nil), r.items...)
}

func (r *Repository) Item(id string) *access.Item {
	return r.itemsByID[id]
}

func (r *Repository) Memberships() permission.Memberships {
	return r.memberships
}

// Bitstream finds a file by ID in any item.
func (r *Repository) Bitstream(id string) *access.Bitstream {
	for _, item := range r.items {
		if bs := item.FindBitstream(id); bs != nil {
			return bs
		}
	}
	return nil
}

// Object resolves id to an item or, failing that, a bitstream.
func (r *Repository) Object(id string) access.Target {
	if item := r.Item(id); item != nil {
		return item
	}
	if bs := r.Bitstream(id); bs != nil {
		return bs
	}
	return nil
}

// Bundle returns the first bundle called name in the item.
func (r *Repository) Bundle(itemID, name string) *access.Bundle {
	item := r.Item(itemID)
	if item == nil {
		return nil
	}
	bundles := item.BundlesNamed(name)
	if len(bundles) == 0 {
		return nil
	}
	return bundles[0]
}

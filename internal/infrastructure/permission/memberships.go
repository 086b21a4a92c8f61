package permission

import "fmt"

// Memberships is the static description of a directory, as found in
// fixtures: group members, collection managers and administrators.
type Memberships struct {
	Groups   map[string][]string
	Managers map[string][]string
	Admins   []string
}

// Load adds every membership to the directory.
func (d *Directory) Load(m Memberships) error {
	for group, members := range m.Groups {
		for _, member := range members {
			if err := d.AddGroupMember(group, member); err != nil {
				return err
			}
		}
	}

	for collectionID, subjects := range m.Managers {
		for _, subject := range subjects {
			if err := d.AssignManagers(collectionID, subject); err != nil {
				return err
			}
		}
	}

	for _, subject := range m.Admins {
		if err := d.AddAdmin(subject); err != nil {
			return fmt.Errorf("failed to add administrator: %w", err)
		}
	}

	d.logger.Infow("permission directory loaded",
		"groups", len(m.Groups),
		"collections", len(m.Managers),
		"admins", len(m.Admins))
	return nil
}

package access

import (
	vo "repoaccess/internal/domain/access/valueobjects"
	"repoaccess/internal/shared/utils/setutil"
)

// embargo lapses into open access, so together they are not "mixed"
var embargoOrOpen = setutil.New(vo.StatusEmbargo.String(), vo.StatusOpenAccess.String())

// GlobalStatus combines the access labels collected over an object's
// files. The boolean is false when there is no label at all, leaving the
// caller to decide what "no restriction signal" means.
//
// Labels are compared after trimming and lower-casing. One distinct label
// gives its classified status, exactly {embargo, openaccess} gives open
// access, and any other combination gives mixed.
func GlobalStatus(labels []string) (vo.AccessStatus, bool) {
	if len(labels) == 0 {
		return "", false
	}

	distinct := setutil.New[string]()
	for _, label := range labels {
		distinct.Add(vo.NormalizeLabel(label))
	}

	switch {
	case distinct.Len() == 1:
		return vo.Classify(distinct.ToSlice()[0]), true
	case distinct.Equal(embargoOrOpen):
		return vo.StatusOpenAccess, true
	default:
		return vo.StatusMixed, true
	}
}

// ExtractAccessTypes collects, in storage order, the names of the READ
// custom policies of every bitstream held in an accepted bundle, keeping
// only names that appear verbatim in the controlled vocabulary.
// Validity dates are not considered: an embargo that will lapse still
// describes the file.
func ExtractAccessTypes(item *Item, acceptedBundles, vocabulary []string) []string {
	if item == nil {
		return nil
	}

	accepted := setutil.New(acceptedBundles...)
	controlled := setutil.New(vocabulary...)

	var types []string
	for _, b := range item.Bundles() {
		if !accepted.Has(b.Name()) {
			continue
		}
		for _, bs := range b.Bitstreams() {
			for _, p := range bs.Policies() {
				if p.Kind() != vo.KindCustom || p.Action() != vo.ActionRead {
					continue
				}
				if !controlled.Has(p.Name()) {
					continue
				}
				types = append(types, p.Name())
			}
		}
	}
	return types
}

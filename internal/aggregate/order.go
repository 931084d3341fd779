package aggregate

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// OrderByGivenName sorts contacts by given name in place using the Unicode
// default collation (language.Und). The sort is stable: contacts with
// equal or empty given names keep their relative order from the input.
//
// Platform-default collation is not reproducible across systems, so the
// root collation is the documented, deterministic choice here.
func OrderByGivenName(contacts []*types.Contact) {
	c := collate.New(language.Und)
	sort.SliceStable(contacts, func(i, j int) bool {
		return c.CompareString(contacts[i].GivenName, contacts[j].GivenName) < 0
	})
}

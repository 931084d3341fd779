// This file implements sample-data seeding for demos and smoke tests.
package sqlite

import (
	"context"

	"github.com/mesh-intelligence/rolodex/internal/batch"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// seedContacts are the contacts written by Seed.
var seedContacts = []*types.Contact{
	{
		GivenName:  "Grace",
		FamilyName: "Hopper",
		Company:    "Navy",
		JobTitle:   "Rear Admiral",
		Birthday:   "1906-12-09",
		Phones: []types.LabeledValue{
			{Value: "555-0100", Type: types.PhoneTypeWork},
			{Value: "555-0199", Type: types.PhoneTypeMobile},
		},
		Emails: []types.LabeledValue{
			{Value: "grace@example.com", Type: types.EmailTypeWork},
		},
		PostalAddresses: []types.PostalAddress{
			{Street: "1 Dahlgren Ave", City: "Arlington", Region: "VA", Postcode: "22202", Country: "US", Type: types.PostalTypeWork},
		},
	},
	{
		GivenName:  "Alan",
		FamilyName: "Turing",
		Note:       "Prefers written correspondence.",
		Phones: []types.LabeledValue{
			{Value: "555-0123", Type: types.TypeCustom, Label: "Bletchley"},
		},
		Emails: []types.LabeledValue{
			{Value: "alan@example.com", Type: types.EmailTypeHome},
		},
	},
	{
		GivenName: "Radia",
		Phones: []types.LabeledValue{
			{Value: "555-0177", Type: types.PhoneTypeHome},
		},
	},
}

// Seed inserts the built-in sample contacts, one batch per contact.
// Intended for fresh stores; seeding an existing store adds duplicates.
func (s *Store) Seed(ctx context.Context) error {
	for _, c := range seedContacts {
		if err := s.ApplyBatch(ctx, batch.BuildAdd(c)); err != nil {
			return err
		}
	}
	return nil
}

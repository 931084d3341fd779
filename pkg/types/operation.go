package types

// OpType is the mutation verb of one batch operation.
type OpType string

// Mutation verbs.
const (
	OpInsert OpType = "insert"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// Logical table names targeted by operations.
const (
	TableRawContacts = "raw_contacts"
	TableData        = "data"
)

// Column keys for Operation.Values. The store maps these onto its schema.
const (
	ColAccountType    = "account_type"
	ColAccountName    = "account_name"
	ColGivenName      = "given_name"
	ColMiddleName     = "middle_name"
	ColFamilyName     = "family_name"
	ColPrefix         = "prefix"
	ColSuffix         = "suffix"
	ColNote           = "note"
	ColPhoneNumber    = "phone_number"
	ColPhoneType      = "phone_type"
	ColPhoneLabel     = "phone_label"
	ColEmailAddress   = "email_address"
	ColEmailType      = "email_type"
	ColEmailLabel     = "email_label"
	ColCompany        = "company"
	ColJobTitle       = "job_title"
	ColOrgType        = "org_type"
	ColStreet         = "street"
	ColCity           = "city"
	ColRegion         = "region"
	ColPostcode       = "postcode"
	ColCountry        = "country"
	ColPostalType     = "postal_type"
	ColPostalLabel    = "postal_label"
	ColEventType      = "event_type"
	ColEventStartDate = "event_start_date"
	ColPhoto          = "photo"
	ColSuperPrimary   = "is_super_primary"
)

// OrgTypeWork is the organization type written by update-mode re-inserts.
const OrgTypeWork = 1

// ContactRef names the raw contact an operation applies to: either a
// back-reference to the identifier generated by an earlier insert in the
// same batch, or a literal store-assigned identifier.
type ContactRef struct {
	IsBackRef bool
	Index     int    // Operation index; valid when IsBackRef.
	ID        string // Literal identifier; valid when !IsBackRef.
}

// BackRef returns a reference to the contact created by the operation at
// the given earlier index in the same batch.
func BackRef(index int) ContactRef {
	return ContactRef{IsBackRef: true, Index: index}
}

// LiteralRef returns a reference to an already-persisted contact.
func LiteralRef(id string) ContactRef {
	return ContactRef{ID: id}
}

// Operation is one atomic create/replace/delete step against the row
// store. A batch is an ordered list of Operations applied all-or-nothing;
// back-references only ever point at an earlier index in the same list.
//
//   - Insert into raw_contacts creates a contact and assigns its identifier;
//     Ref is unused.
//   - Insert into data adds one row of Kind for the contact named by Ref.
//   - Update on data rewrites the columns of the rows matching Ref + Kind
//     in place.
//   - Delete on data removes all rows matching Ref + Kind; delete on
//     raw_contacts removes the contact row (dependent data rows cascade,
//     which is the store's responsibility).
type Operation struct {
	Type   OpType
	Table  string
	Kind   RowKind // Data-table operations only.
	Ref    ContactRef
	Values map[string]any
}

package types

// RowKind discriminates which sub-schema a data row's columns follow.
// The set is closed; consumers dispatch with an exhaustive switch so a
// new kind is a compile-visible change, and rows of an unlisted kind are
// ignored rather than rejected.
type RowKind string

// Recognized row kinds. KindPhoto rows carry the avatar blob and are not
// part of the aggregation projection.
const (
	KindStructuredName RowKind = "structured_name"
	KindNote           RowKind = "note"
	KindPhone          RowKind = "phone"
	KindEmail          RowKind = "email"
	KindOrganization   RowKind = "organization"
	KindPostal         RowKind = "postal_address"
	KindEvent          RowKind = "event"
	KindPhoto          RowKind = "photo"
)

// AggregateKinds lists the seven kinds the aggregator consumes, in the
// order used for store projections.
var AggregateKinds = []RowKind{
	KindStructuredName,
	KindNote,
	KindPhone,
	KindEmail,
	KindOrganization,
	KindPostal,
	KindEvent,
}

// Event sub-kinds. Only birthday events populate Contact.Birthday.
const (
	EventTypeAnniversary = 1
	EventTypeOther       = 2
	EventTypeBirthday    = 3
)

// Row is one flat, denormalized record from the backing store: a contact
// identifier, a kind discriminator, and the union of all kind-specific
// columns. Only the columns relevant to Kind are meaningful; the rest are
// undefined for that row. DisplayName, AccountType, and AccountName are
// joined onto every row regardless of kind.
type Row struct {
	ContactID   string
	Kind        RowKind
	DisplayName string
	AccountType string
	AccountName string

	// structured_name
	GivenName  string
	MiddleName string
	FamilyName string
	Prefix     string
	Suffix     string

	// note
	Note string

	// phone
	PhoneNumber string
	PhoneType   int
	PhoneLabel  string

	// email
	EmailAddress string
	EmailType    int
	EmailLabel   string

	// organization
	Company  string
	JobTitle string

	// postal_address
	Street      string
	City        string
	Region      string
	Postcode    string
	Country     string
	PostalType  int
	PostalLabel string

	// event
	EventType      int
	EventStartDate string
}

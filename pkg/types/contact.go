package types

// Contact is the structured, nested view of one address-book entry.
// Identifier is assigned by the store on first insert and is empty for
// not-yet-persisted contacts; update and delete reject an empty one.
// The multi-valued slices preserve first-seen order from the row stream.
type Contact struct {
	Identifier  string `json:"identifier,omitempty"` // Store-assigned; opaque.
	DisplayName string `json:"displayName"`
	GivenName   string `json:"givenName"`
	MiddleName  string `json:"middleName"`
	FamilyName  string `json:"familyName"`
	Prefix      string `json:"prefix"`
	Suffix      string `json:"suffix"`
	Note        string `json:"note"`
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	Birthday    string `json:"birthday"` // String-encoded date, as stored.
	AccountType string `json:"accountType"`
	AccountName string `json:"accountName"`

	// Avatar holds the contact photo as PNG bytes. Empty (never nil when
	// photos were requested) if the store has no photo for the contact.
	Avatar []byte `json:"avatar,omitempty"`

	Phones          []LabeledValue  `json:"phones"`
	Emails          []LabeledValue  `json:"emails"`
	PostalAddresses []PostalAddress `json:"postalAddresses"`
}

// NewContact returns a Contact with the given identifier and empty,
// non-nil multi-valued slices.
func NewContact(identifier string) *Contact {
	return &Contact{
		Identifier:      identifier,
		Phones:          []LabeledValue{},
		Emails:          []LabeledValue{},
		PostalAddresses: []PostalAddress{},
	}
}

// LabeledValue is one phone number or email address: a resolved display
// label (possibly empty), the raw value, and the type code. A type code of
// TypeCustom means the label is caller-supplied text rather than a
// predefined string.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Type  int    `json:"type"`
}

// PostalAddress is one structured postal address. The custom-label rule of
// LabeledValue applies to Type and Label here as well.
type PostalAddress struct {
	Label    string `json:"label"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Type     int    `json:"type"`
}

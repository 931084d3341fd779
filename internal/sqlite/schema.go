// Package sqlite implements the row store on SQLite: a raw_contacts table
// holding contact identity and a single kind-discriminated data table
// holding one datum per row, mirroring the flat projection the aggregator
// consumes.
package sqlite

// Schema DDL. The store is persistent across opens, so everything is
// IF NOT EXISTS.
const (
	createRawContacts = `CREATE TABLE IF NOT EXISTS raw_contacts (
    contact_id TEXT PRIMARY KEY,
    account_type TEXT,
    account_name TEXT,
    display_name TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createData = `CREATE TABLE IF NOT EXISTS data (
    data_id TEXT PRIMARY KEY,
    contact_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    is_super_primary INTEGER NOT NULL DEFAULT 0,
    given_name TEXT,
    middle_name TEXT,
    family_name TEXT,
    prefix TEXT,
    suffix TEXT,
    note TEXT,
    phone_number TEXT,
    phone_type INTEGER,
    phone_label TEXT,
    email_address TEXT,
    email_type INTEGER,
    email_label TEXT,
    company TEXT,
    job_title TEXT,
    org_type INTEGER,
    street TEXT,
    city TEXT,
    region TEXT,
    postcode TEXT,
    country TEXT,
    postal_type INTEGER,
    postal_label TEXT,
    event_type INTEGER,
    event_start_date TEXT,
    photo BLOB,
    FOREIGN KEY (contact_id) REFERENCES raw_contacts(contact_id) ON DELETE CASCADE
);`
)

// Index DDL for the lookup paths the façade issues.
const (
	idxDataContact = `CREATE INDEX IF NOT EXISTS idx_data_contact ON data(contact_id);`
	idxDataKind    = `CREATE INDEX IF NOT EXISTS idx_data_kind ON data(kind);`
	idxDataPhone   = `CREATE INDEX IF NOT EXISTS idx_data_phone ON data(kind, phone_number);`
	idxDataEmail   = `CREATE INDEX IF NOT EXISTS idx_data_email ON data(kind, email_address);`
)

// schemaDDL lists all statements executed on open, in dependency order.
var schemaDDL = []string{
	createRawContacts,
	createData,
	idxDataContact,
	idxDataKind,
	idxDataPhone,
	idxDataEmail,
}

// Package rolodex exposes module-level metadata.
package rolodex

// Version is the semantic version of the rolodex module.
const Version = "0.1.0"

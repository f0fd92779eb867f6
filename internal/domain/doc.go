// Package domain contains types shared by the entity sub-packages
// (domain/note, domain/actionitem) and the extraction engine
// (domain/extraction). This root package holds sentinel errors and the
// field-level ValidationError used across all of them.
package domain

// Package models contains GORM-specific persistence models that map to the hostel
// back-office tables read by the ledger. They are kept apart from the ledger domain
// types so the domain layer stays free of ORM concerns.
//
// Columns tagged "->;-:migration" are read-only projections filled from joined
// tables (hostel and tenant names) and never exist in the schema.
package models

package models

import "database/sql"

// Client is a row of the clients table.
type Client struct {
	ClientID string         `db:"client_id"`
	OwnerID  string         `db:"owner_id"`
	Name     string         `db:"name"`
	Email    sql.NullString `db:"email"`
	Address  sql.NullString `db:"address"`
	Phone    sql.NullString `db:"phone"`
	AuditFields
}

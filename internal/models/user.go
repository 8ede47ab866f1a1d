package models

import (
	"database/sql"
)

// User is a row of the users table. The business_* columns hold the issuer profile.
type User struct {
	UserID          string         `db:"user_id"`
	Email           string         `db:"email"`
	PasswordHash    string         `db:"password_hash"`
	BusinessName    sql.NullString `db:"business_name"`
	BusinessAddress sql.NullString `db:"business_address"`
	BusinessPhone   sql.NullString `db:"business_phone"`
	BusinessEmail   sql.NullString `db:"business_email"`
	AuditFields
}

package entity

import "time"

// User representa una cuenta de cliente de la tienda. El email es único.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca texto plano
	CreatedAt    time.Time
}

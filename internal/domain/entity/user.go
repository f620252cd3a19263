package entity

// User representa un usuario del dashboard.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string // bcrypt hash, nunca plano
}

package models

type User struct {
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-"`
}

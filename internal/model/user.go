package model

type User struct {
	ID       int64
	Username string
	HashPwd  string
}

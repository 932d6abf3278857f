package models

import "time"

type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// UserInfo is the public profile returned on login.
type UserInfo struct {
	Username string `json:"username"`
}

func (u User) Info() UserInfo { return UserInfo{Username: u.Username} }

// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

// StudentIdentity is returned by a successful student login.
type StudentIdentity struct {
	StudentCode string
	Name        string
}

// StaffIdentity is returned by a successful teacher/admin login.
type StaffIdentity struct {
	UserID uint
	Name   string
}

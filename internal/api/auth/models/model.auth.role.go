// Package models - Role thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role vai trò trong hệ thống.
// Permissions là danh sách quyền nhúng trực tiếp theo convention <Domain>.<Action>,
// ví dụ "LetsPosition.Read" hoặc "Certification.Submit".
type Role struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique" validate:"required,no_xss"`
	Describe    string             `json:"describe" bson:"describe,omitempty"`
	Permissions []string           `json:"permissions" bson:"permissions"`
	IsSystem    bool               `json:"-" bson:"isSystem"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// HasPermission kiểm tra role có quyền cụ thể hay không.
// Quyền "*" cho phép mọi thao tác.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p == name || p == "*" {
			return true
		}
	}
	return false
}

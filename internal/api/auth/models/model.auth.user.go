// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng của hệ thống đối soát.
// BureauFips xác định phạm vi dữ liệu: user thuộc một bureau cụ thể,
// user cấp bang (state admin) để trống BureauFips và thấy mọi bureau.
// Token chứa token xác thực mới nhất của người dùng.
// Tokens chứa danh sách token theo thiết bị (mỗi hwid một token riêng).
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required,no_xss"`
	Email      string             `json:"email" bson:"email" index:"unique" validate:"required,email"`
	Password   string             `json:"-" bson:"password,omitempty"`
	BureauFips string             `json:"bureauFips" bson:"bureauFips,omitempty" index:"single:1"`
	RoleID     primitive.ObjectID `json:"roleId" bson:"roleId,omitempty" index:"single:1"`
	Token      string             `json:"token,omitempty" bson:"token,omitempty"`
	Tokens     []Token            `json:"-" bson:"tokens,omitempty"`
	IsBlock    bool               `json:"-" bson:"isBlock"`
	BlockNote  string             `json:"-" bson:"blockNote,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

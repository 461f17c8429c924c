package dto

// RoleCreateInput dữ liệu đầu vào khi tạo role
type RoleCreateInput struct {
	Name        string   `json:"name" validate:"required,no_xss"`
	Describe    string   `json:"describe" validate:"omitempty,no_xss"`
	Permissions []string `json:"permissions" validate:"required,min=1"`
}

// RoleUpdateInput dữ liệu đầu vào khi cập nhật role
type RoleUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Describe    string   `json:"describe,omitempty" validate:"omitempty,no_xss"`
	Permissions []string `json:"permissions,omitempty" validate:"omitempty,min=1"`
}

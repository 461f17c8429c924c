// Package dto - các DTO cho domain auth.
package dto

// UserCreateInput dữ liệu đầu vào khi tạo người dùng
type UserCreateInput struct {
	Name       string `json:"name" validate:"required,no_xss"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,strong_password"`
	BureauFips string `json:"bureauFips" validate:"omitempty,fips"`
	RoleID     string `json:"roleId" validate:"omitempty,len=24"`
}

// UserUpdateInput dữ liệu đầu vào khi cập nhật người dùng
type UserUpdateInput struct {
	Name       string `json:"name,omitempty" validate:"omitempty,no_xss"`
	BureauFips string `json:"bureauFips,omitempty" validate:"omitempty,fips"`
	RoleID     string `json:"roleId,omitempty" validate:"omitempty,len=24"`
}

// UserLoginInput dữ liệu đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput dữ liệu đăng xuất
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangePasswordInput dữ liệu đổi mật khẩu
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

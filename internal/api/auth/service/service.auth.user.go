// Package authsvc chứa các service nghiệp vụ cho domain auth.
package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "lets_reconcile/internal/api/auth/dto"
	"lets_reconcile/internal/api/auth/models"
	basesvc "lets_reconcile/internal/api/base/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/utility"
)

// UserService service quản lý người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](coll),
	}, nil
}

// Create tạo người dùng mới với mật khẩu đã được băm
func (s *UserService) Create(ctx context.Context, input *authdto.UserCreateInput) (*models.User, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessState, "Email đã được sử dụng", common.StatusConflict, nil)
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   hashed,
		BureauFips: input.BureauFips,
	}
	if input.RoleID != "" {
		user.RoleID = utility.String2ObjectID(input.RoleID)
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Create: Tạo người dùng thành công")
	return &created, nil
}

// Login xác thực email và mật khẩu, cấp JWT token mới cho thiết bị (hwid)
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Không phân biệt user không tồn tại và sai mật khẩu
		return nil, common.ErrInvalidCredentials
	}

	if !utility.VerifyPassword(input.Password, user.Password) {
		logrus.WithField("email", input.Email).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, token := range user.Tokens {
		if token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout xóa token của thiết bị (hwid) khỏi user
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	remaining := make([]models.Token, 0, len(user.Tokens))
	for _, token := range user.Tokens {
		if token.Hwid != input.Hwid {
			remaining = append(remaining, token)
		}
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  "",
			"tokens": remaining,
		},
	}
	if _, err := s.UpdateById(ctx, userID, updateData); err != nil {
		return err
	}

	logrus.WithField("user_id", userID.Hex()).Info("Logout: Đăng xuất thành công")
	return nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
// Mọi token hiện có bị thu hồi để buộc đăng nhập lại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.VerifyPassword(input.OldPassword, user.Password) {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không đúng", common.StatusUnauthorized, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	if _, err := s.UpdateById(ctx, userID, updateData); err != nil {
		return err
	}

	logrus.WithField("user_id", userID.Hex()).Info("ChangePassword: Đổi mật khẩu thành công")
	return nil
}

// SetRole gán role cho người dùng
func (s *UserService) SetRole(ctx context.Context, userID primitive.ObjectID, roleID primitive.ObjectID) (*models.User, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"roleId": roleID},
	}
	user, err := s.UpdateById(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

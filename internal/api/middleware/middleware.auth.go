package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"lets_reconcile/internal/api/auth/models"
	authsvc "lets_reconcile/internal/api/auth/service"
	"lets_reconcile/internal/common"
	"lets_reconcile/internal/global"
	"lets_reconcile/internal/logger"
	"lets_reconcile/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	RoleCRUD *authsvc.RoleService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}

	return &AuthManager{
		UserCRUD: userService,
		RoleCRUD: roleService,
		// Cache permissions với thời gian sống 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// getRolePermissions lấy danh sách permissions của role từ cache hoặc database
func (am *AuthManager) getRolePermissions(ctx context.Context, user *models.User) (*models.Role, error) {
	if user.RoleID.IsZero() {
		return nil, nil
	}

	cacheKey := "role_permissions:" + user.RoleID.Hex()
	if cached, found := am.Cache.Get(cacheKey); found {
		role := cached.(models.Role)
		return &role, nil
	}

	role, err := am.RoleCRUD.FindOneById(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	am.Cache.Set(cacheKey, role)
	return &role, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập, không cần quyền cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác minh chữ ký và hạn của JWT trước khi tra database
		tokenUserID, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token không hợp lệ hoặc đã hết hạn")
			HandleErrorResponse(c, err)
			return nil
		}

		// Tìm user có token: ưu tiên field "token" (token mới nhất),
		// fallback sang array "tokens" (token theo hwid)
		user, err := authManager.UserCRUD.FindOne(c.Context(), bson.M{"token": token}, nil)
		if err != nil {
			user, err = authManager.UserCRUD.FindOne(c.Context(), bson.M{"tokens.jwtToken": token}, nil)
		}
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token không tồn tại trong database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Token phải thuộc đúng user mà claims khai báo
		if user.ID.Hex() != tokenUserID {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("bureau_fips", user.BureauFips)

		if requirePermission == "" {
			return c.Next()
		}

		role, err := authManager.getRolePermissions(c.Context(), &user)
		if err != nil || role == nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":    user.ID.Hex(),
				"user_email": user.Email,
				"path":       c.Path(),
				"permission": requirePermission,
			}).Warn("[AUTH] Người dùng chưa được gán vai trò")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Người dùng chưa được gán vai trò. Vui lòng liên hệ quản trị viên để được cấp quyền truy cập.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		if !role.HasPermission(requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"role":                role.Name,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("[AUTH] Người dùng không có quyền cần thiết")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("role", *role)
		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}

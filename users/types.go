package users

import (
	"time"

	"github.com/semtisem/dracoon-go/models"
)

type AuthData struct {
	Method             string `json:"method"`
	Login              string `json:"login,omitempty"`
	Password           string `json:"password,omitempty"`
	MustChangePassword bool   `json:"mustChangePassword,omitempty"`
	ADConfigID         int64  `json:"adConfigId,omitempty"`
	OIDConfigID        int64  `json:"oidConfigId,omitempty"`
}

type User struct {
	ID                 int64            `json:"id"`
	UserName           string           `json:"userName"`
	FirstName          string           `json:"firstName"`
	LastName           string           `json:"lastName"`
	Email              string           `json:"email,omitempty"`
	Phone              string           `json:"phone,omitempty"`
	IsLocked           bool             `json:"isLocked"`
	HasManageableRooms bool             `json:"hasManageableRooms,omitempty"`
	ExpireAt           *time.Time       `json:"expireAt,omitempty"`
	CreatedAt          *time.Time       `json:"createdAt,omitempty"`
	LastLoginSuccessAt *time.Time       `json:"lastLoginSuccessAt,omitempty"`
	AuthData           *AuthData        `json:"authData,omitempty"`
	UserRoles          *models.RoleList `json:"userRoles,omitempty"`
}

type UserList struct {
	Range models.Range `json:"range"`
	Items []User       `json:"items"`
}

type UserGroup struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsMember bool   `json:"isMember"`
}

type UserGroupList struct {
	Range models.Range `json:"range"`
	Items []UserGroup  `json:"items"`
}

type LastAdminUserRoom struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ParentPath string `json:"parentPath"`
	ParentID   int64  `json:"parentId,omitempty"`
}

type LastAdminUserRoomList struct {
	Items []LastAdminUserRoom `json:"items"`
}

// CreateUserRequest is the payload for CreateUser.
type CreateUserRequest struct {
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	UserName          string             `json:"userName,omitempty"`
	Email             string             `json:"email,omitempty"`
	Phone             string             `json:"phone,omitempty"`
	ReceiverLanguage  string             `json:"receiverLanguage,omitempty"`
	NotifyUser        *bool              `json:"notifyUser,omitempty"`
	AuthData          *AuthData          `json:"authData,omitempty"`
	IsNonmemberViewer *bool              `json:"isNonmemberViewer,omitempty"`
	Expiration        *models.Expiration `json:"expiration,omitempty"`
}

// UpdateUserRequest is the payload for UpdateUser, zero fields are left
// untouched.
type UpdateUserRequest struct {
	FirstName        string             `json:"firstName,omitempty"`
	LastName         string             `json:"lastName,omitempty"`
	UserName         string             `json:"userName,omitempty"`
	Email            string             `json:"email,omitempty"`
	Phone            string             `json:"phone,omitempty"`
	ReceiverLanguage string             `json:"receiverLanguage,omitempty"`
	IsLocked         *bool              `json:"isLocked,omitempty"`
	AuthData         *AuthData          `json:"authData,omitempty"`
	Expiration       *models.Expiration `json:"expiration,omitempty"`
}

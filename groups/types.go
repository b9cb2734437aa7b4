package groups

import (
	"time"

	"github.com/semtisem/dracoon-go/models"
)

type Group struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	CreatedAt  time.Time          `json:"createdAt"`
	CreatedBy  *models.UserInfo   `json:"createdBy,omitempty"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty"`
	UpdatedBy  *models.UserInfo   `json:"updatedBy,omitempty"`
	CntUsers   int                `json:"cntUsers"`
	Expiration *models.Expiration `json:"expiration,omitempty"`
}

type GroupList struct {
	Range models.Range `json:"range"`
	Items []Group      `json:"items"`
}

type GroupUser struct {
	UserInfo models.UserInfo `json:"userInfo"`
	IsMember bool            `json:"isMember"`
}

type GroupUserList struct {
	Range models.Range `json:"range"`
	Items []GroupUser  `json:"items"`
}

type LastAdminGroupRoom struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ParentPath string `json:"parentPath"`
	ParentID   int64  `json:"parentId,omitempty"`
}

type LastAdminGroupRoomList struct {
	Items []LastAdminGroupRoom `json:"items"`
}

// CreateGroupRequest is the payload for CreateGroup.
type CreateGroupRequest struct {
	Name       string             `json:"name"`
	Expiration *models.Expiration `json:"expiration,omitempty"`
}

// UpdateGroupRequest is the payload for UpdateGroup, nil fields are left
// untouched.
type UpdateGroupRequest struct {
	Name       string             `json:"name,omitempty"`
	Expiration *models.Expiration `json:"expiration,omitempty"`
}

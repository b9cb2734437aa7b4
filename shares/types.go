package shares

import (
	"time"

	"github.com/semtisem/dracoon-go/models"
)

type DownloadShare struct {
	ID              int64            `json:"id"`
	NodeID          int64            `json:"nodeId"`
	Name            string           `json:"name"`
	AccessKey       string           `json:"accessKey"`
	NodePath        string           `json:"nodePath,omitempty"`
	CntDownloads    int              `json:"cntDownloads"`
	MaxDownloads    int              `json:"maxDownloads,omitempty"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	CreatedBy       *models.UserInfo `json:"createdBy,omitempty"`
	ExpireAt        *time.Time       `json:"expireAt,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ShowCreatorName bool             `json:"showCreatorName,omitempty"`
	IsProtected     bool             `json:"isProtected,omitempty"`
	IsEncrypted     bool             `json:"isEncrypted,omitempty"`
	DataURL         string           `json:"dataUrl,omitempty"`
}

type DownloadShareList struct {
	Range models.Range    `json:"range"`
	Items []DownloadShare `json:"items"`
}

// CreateDownloadShareRequest is the payload for CreateDownloadShare.
type CreateDownloadShareRequest struct {
	NodeID           int64              `json:"nodeId"`
	Name             string             `json:"name,omitempty"`
	Password         string             `json:"password,omitempty"`
	Expiration       *models.Expiration `json:"expiration,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	MaxDownloads     int                `json:"maxDownloads,omitempty"`
	ShowCreatorName  *bool              `json:"showCreatorName,omitempty"`
	ReceiverLanguage string             `json:"receiverLanguage,omitempty"`
}

// UpdateDownloadShareRequest is the payload for UpdateDownloadShare.
type UpdateDownloadShareRequest struct {
	Name              string             `json:"name,omitempty"`
	Expiration        *models.Expiration `json:"expiration,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	MaxDownloads      int                `json:"maxDownloads,omitempty"`
	ShowCreatorName   *bool              `json:"showCreatorName,omitempty"`
	ResetMaxDownloads *bool              `json:"resetMaxDownloads,omitempty"`
	ResetPassword     *bool              `json:"resetPassword,omitempty"`
}

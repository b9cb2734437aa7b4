package nodes

import (
	"time"

	"github.com/semtisem/dracoon-go/models"
)

const (
	NodeTypeRoom   = "room"
	NodeTypeFolder = "folder"
	NodeTypeFile   = "file"
)

type Node struct {
	ID                        int64            `json:"id"`
	Type                      string           `json:"type"`
	Name                      string           `json:"name"`
	ParentID                  int64            `json:"parentId,omitempty"`
	ParentPath                string           `json:"parentPath,omitempty"`
	CreatedAt                 *time.Time       `json:"createdAt,omitempty"`
	CreatedBy                 *models.UserInfo `json:"createdBy,omitempty"`
	UpdatedAt                 *time.Time       `json:"updatedAt,omitempty"`
	UpdatedBy                 *models.UserInfo `json:"updatedBy,omitempty"`
	Size                      int64            `json:"size,omitempty"`
	Classification            int              `json:"classification,omitempty"`
	Notes                     string           `json:"notes,omitempty"`
	Hash                      string           `json:"hash,omitempty"`
	CntRooms                  int              `json:"cntRooms,omitempty"`
	CntFolders                int              `json:"cntFolders,omitempty"`
	CntFiles                  int              `json:"cntFiles,omitempty"`
	CntDeletedVersions        int              `json:"cntDeletedVersions,omitempty"`
	RecycleBinRetentionPeriod int              `json:"recycleBinRetentionPeriod,omitempty"`
	Quota                     int64            `json:"quota,omitempty"`
	IsEncrypted               bool             `json:"isEncrypted,omitempty"`
	IsFavorite                bool             `json:"isFavorite,omitempty"`
	MediaType                 string           `json:"mediaType,omitempty"`
	BranchVersion             int64            `json:"branchVersion,omitempty"`
}

type NodeList struct {
	Range models.Range `json:"range"`
	Items []Node       `json:"items"`
}

type DeletedNodeSummary struct {
	ParentID          int64      `json:"parentId"`
	ParentPath        string     `json:"parentPath"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	CntVersions       int        `json:"cntVersions"`
	FirstDeletedAt    *time.Time `json:"firstDeletedAt,omitempty"`
	LastDeletedAt     *time.Time `json:"lastDeletedAt,omitempty"`
	LastDeletedNodeID int64      `json:"lastDeletedNodeId"`
	TimestampCreation *time.Time `json:"timestampCreation,omitempty"`
}

type DeletedNodeSummaryList struct {
	Range models.Range         `json:"range"`
	Items []DeletedNodeSummary `json:"items"`
}

// CreateFolderRequest is the payload for CreateFolder.
type CreateFolderRequest struct {
	ParentID       int64  `json:"parentId"`
	Name           string `json:"name"`
	Notes          string `json:"notes,omitempty"`
	Classification int    `json:"classification,omitempty"`
}

// UpdateFolderRequest is the payload for UpdateFolder.
type UpdateFolderRequest struct {
	Name           string `json:"name,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Classification int    `json:"classification,omitempty"`
}

// CreateRoomRequest is the payload for CreateRoom.
type CreateRoomRequest struct {
	Name                      string  `json:"name"`
	ParentID                  int64   `json:"parentId,omitempty"`
	Notes                     string  `json:"notes,omitempty"`
	Quota                     int64   `json:"quota,omitempty"`
	RecycleBinRetentionPeriod int     `json:"recycleBinRetentionPeriod,omitempty"`
	InheritPermissions        *bool   `json:"inheritPermissions,omitempty"`
	AdminIDs                  []int64 `json:"adminIds,omitempty"`
	AdminGroupIDs             []int64 `json:"adminGroupIds,omitempty"`
	Classification            int     `json:"classification,omitempty"`
}

// TransferNodesRequest moves or copies nodes below a new parent.
type TransferNodesRequest struct {
	Items              []TransferNode `json:"items"`
	ResolutionStrategy string         `json:"resolutionStrategy,omitempty"`
	KeepShareLinks     *bool          `json:"keepShareLinks,omitempty"`
}

type TransferNode struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// RestoreNodesRequest restores deleted node versions below parentId.
type RestoreNodesRequest struct {
	DeletedNodeIDs     []int64 `json:"deletedNodeIds"`
	ResolutionStrategy string  `json:"resolutionStrategy,omitempty"`
	KeepShareLinks     *bool   `json:"keepShareLinks,omitempty"`
	ParentID           int64   `json:"parentId,omitempty"`
}

// SearchParams extend the common list parameters for SearchNodes.
type SearchParams struct {
	models.ListParams
	ParentID   int64
	DepthLevel int
}

package eventlog

import (
	"time"

	"github.com/semtisem/dracoon-go/models"
)

type AuditUserPermission struct {
	UserID        int64       `json:"userId"`
	UserLogin     string      `json:"userLogin"`
	UserFirstName string      `json:"userFirstName"`
	UserLastName  string      `json:"userLastName"`
	Permissions   Permissions `json:"permissions"`
}

type Permissions struct {
	Manage              bool `json:"manage"`
	Read                bool `json:"read"`
	Create              bool `json:"create"`
	Change              bool `json:"change"`
	Delete              bool `json:"delete"`
	ManageDownloadShare bool `json:"manageDownloadShare"`
	ManageUploadShare   bool `json:"manageUploadShare"`
	ReadRecycleBin      bool `json:"readRecycleBin"`
	RestoreRecycleBin   bool `json:"restoreRecycleBin"`
	DeleteRecycleBin    bool `json:"deleteRecycleBin"`
}

type AuditNodeInfo struct {
	NodeID                  int64                 `json:"nodeId"`
	NodeName                string                `json:"nodeName"`
	NodeParentPath          string                `json:"nodeParentPath"`
	NodeCntChildren         int                   `json:"nodeCntChildren"`
	AuditUserPermissionList []AuditUserPermission `json:"auditUserPermissionList"`
}

type AuditNodeInfoList struct {
	Range models.Range    `json:"range"`
	Items []AuditNodeInfo `json:"items"`
}

type LogEvent struct {
	ID               int64     `json:"id"`
	Time             time.Time `json:"time"`
	UserID           int64     `json:"userId"`
	Message          string    `json:"message"`
	OperationID      int       `json:"operationId,omitempty"`
	OperationName    string    `json:"operationName,omitempty"`
	Status           int       `json:"status,omitempty"`
	UserClient       string    `json:"userClient,omitempty"`
	CustomerID       int64     `json:"customerId,omitempty"`
	UserName         string    `json:"userName,omitempty"`
	UserIP           string    `json:"userIp,omitempty"`
	AuthParentSource string    `json:"authParentSource,omitempty"`
	AuthParentTarget string    `json:"authParentTarget,omitempty"`
	ObjectID1        int64     `json:"objectId1,omitempty"`
	ObjectName1      string    `json:"objectName1,omitempty"`
	ObjectType1      int       `json:"objectType1,omitempty"`
	ObjectID2        int64     `json:"objectId2,omitempty"`
	ObjectName2      string    `json:"objectName2,omitempty"`
	ObjectType2      int       `json:"objectType2,omitempty"`
	Attribute1       string    `json:"attribute1,omitempty"`
	Attribute2       string    `json:"attribute2,omitempty"`
	Attribute3       string    `json:"attribute3,omitempty"`
}

type LogEventList struct {
	Range models.Range `json:"range"`
	Items []LogEvent   `json:"items"`
}

// EventParams extend the common list parameters with the event log filters.
type EventParams struct {
	models.ListParams
	DateStart   string
	DateEnd     string
	OperationID int
	UserID      int64
}

package models

import "strconv"

// MaxPageSize is the hard item cap the API puts on every list endpoint.
// Bigger result sets need offset paging, see nodes.GetAllDeletedNodes.
const MaxPageSize = 500

// Range is the paging envelope every list response carries.
type Range struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// ListParams are the common query parameters of list endpoints. Zero values
// are left out of the query, except offset which the API always expects.
type ListParams struct {
	Offset int
	Filter string
	Limit  int
	Sort   string
}

func (p ListParams) Query() map[string]string {
	q := map[string]string{
		"offset": strconv.Itoa(p.Offset),
	}
	if p.Filter != "" {
		q["filter"] = p.Filter
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Sort != "" {
		q["sort"] = p.Sort
	}
	return q
}

// IDList is the generic bulk id payload (group user assignment, node
// deletion and friends).
type IDList struct {
	IDs []int64 `json:"ids"`
}

// Expiration marks an object as expiring at a given date.
type Expiration struct {
	EnableExpiration bool   `json:"enableExpiration"`
	ExpireAt         string `json:"expireAt,omitempty"`
}

// UserInfo is the short user fragment embedded in audit and membership
// responses.
type UserInfo struct {
	ID         int64  `json:"id"`
	UserType   string `json:"userType,omitempty"`
	AvatarUUID string `json:"avatarUuid,omitempty"`
	UserName   string `json:"userName,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
}

// Role of a user or group.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type RoleList struct {
	Items []Role `json:"items"`
}

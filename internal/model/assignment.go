package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Assignment says who a task belongs to: one user, or both players when
// shared. The zero value is shared. It is stored as a nullable column
// (NULL = shared) and serialized the same way on the wire, so there is a
// single representation instead of the absent/null/empty-string ambiguity.
type Assignment struct {
	UserID string
}

// Shared reports whether the task belongs to every player.
func (a Assignment) Shared() bool { return a.UserID == "" }

// Includes reports whether the task is visible to the given user.
func (a Assignment) Includes(userID string) bool {
	return a.Shared() || a.UserID == userID
}

// AssignedTo builds an assignment for a single user. An empty id means shared.
func AssignedTo(userID string) Assignment { return Assignment{UserID: userID} }

func (a Assignment) Value() (driver.Value, error) {
	if a.Shared() {
		return nil, nil
	}
	return a.UserID, nil
}

func (a *Assignment) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		a.UserID = ""
	case string:
		a.UserID = v
	case []byte:
		a.UserID = string(v)
	default:
		return fmt.Errorf("assignment: cannot scan %T", src)
	}
	return nil
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	if a.Shared() {
		return []byte("null"), nil
	}
	return json.Marshal(a.UserID)
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		a.UserID = ""
		return nil
	}
	return json.Unmarshal(data, &a.UserID)
}

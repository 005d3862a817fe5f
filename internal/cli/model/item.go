package model

// Item - base item model. ID 0 means the item has not been created on the server yet.
type Item struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IsNew reports whether the item still needs a server-assigned id.
func (it Item) IsNew() bool { return it.ID == 0 }

package model

import "time"

type Command struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CommandPatch carries the fields of an edit. Nil fields are left untouched.
type CommandPatch struct {
	Text        *string
	Description *string
	CategoryID  *string
}

// Apply merges the patch into c and returns the result.
func (p CommandPatch) Apply(c Command) Command {
	if p.Text != nil {
		c.Text = *p.Text
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.CategoryID != nil {
		c.CategoryID = *p.CategoryID
	}
	return c
}

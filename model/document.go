package model

// Top-level keys of the persisted document.
const (
	KeyCategories = "categories"
	KeyCommands   = "commands"
)

// Document is the whole persisted state: both collections, written together.
type Document struct {
	Categories []Category `json:"categories"`
	Commands   []Command  `json:"commands"`
}

// Clone returns a copy that shares no backing arrays with d.
func (d Document) Clone() Document {
	return Document{
		Categories: append([]Category{}, d.Categories...),
		Commands:   append([]Command{}, d.Commands...),
	}
}

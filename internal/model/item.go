package model

import (
	"fmt"
	"strings"
)

// Item is one categorized entry in the list.
// Content is kept exactly as typed; only emptiness is checked on add.
type Item struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Label renders the row text, e.g. "Apple (Food)". Line breaks in the
// content become spaces so a row always takes one screen line.
func (i Item) Label() string {
	return fmt.Sprintf("%s (%s)", lineBreaks.Replace(i.Content), i.Category)
}

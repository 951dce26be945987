package catalog

import (
	"bytes"
	"encoding/json"
)

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Historical  string   `json:"historical"`
}

type MenuCategory struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// Menu groups items by category key. The JSON form is an object keyed by
// category, with keys emitted in first-seen order (encoding/json maps would
// sort them, which loses the sheet ordering the frontend renders).
type Menu struct {
	keys       []string
	categories map[string]*MenuCategory
}

func NewMenu() *Menu {
	return &Menu{categories: make(map[string]*MenuCategory)}
}

// Add appends an item under a category key, creating the category with the
// given display title on first use.
func (m *Menu) Add(key, title string, item MenuItem) {
	cat, ok := m.categories[key]
	if !ok {
		cat = &MenuCategory{Title: title, Items: []MenuItem{}}
		m.categories[key] = cat
		m.keys = append(m.keys, key)
	}
	cat.Items = append(cat.Items, item)
}

// Keys returns the category keys in first-seen order.
func (m *Menu) Keys() []string {
	return m.keys
}

// Category returns the category for a key, or nil.
func (m *Menu) Category(key string) *MenuCategory {
	return m.categories[key]
}

// Len returns the total number of items across categories.
func (m *Menu) Len() int {
	n := 0
	for _, cat := range m.categories {
		n += len(cat.Items)
	}
	return n
}

func (m *Menu) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.categories[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Capacity    string `json:"capacity"`
	Price       string `json:"price"`
}

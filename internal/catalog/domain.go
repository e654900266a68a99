// internal/catalog/domain.go
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind discriminates the catalog item variants.
type Kind string

const (
	KindBook    Kind = "Book"
	KindComic   Kind = "Comic"
	KindJournal Kind = "Journal"
)

// Item availability statuses.
const (
	StatusAvailable   = "AVAILABLE"
	StatusUnavailable = "UNAVAILABLE"
)

// Frequencies lists the valid journal publication frequencies.
var Frequencies = []string{"DAILY", "WEEKLY", "MONTHLY", "QUARTERLY", "ANNUALLY"}

// PlaceholderCover is used when an item has no cover image of its own.
const PlaceholderCover = "https://via.placeholder.com/300x400?text=No+Cover"

// kindInfo carries per-kind routing data so kind dispatch is a table
// lookup instead of switch statements scattered across packages.
type kindInfo struct {
	addRoute   string
	editPrefix string
	label      string
}

var kinds = map[Kind]kindInfo{
	KindBook:    {addRoute: "/add-books", editPrefix: "/update-book", label: "Book"},
	KindComic:   {addRoute: "/add-comics", editPrefix: "/update-comic", label: "Comic"},
	KindJournal: {addRoute: "/add-journals", editPrefix: "/update-journal", label: "Journal"},
}

// Kinds returns every known kind in display order.
func Kinds() []Kind {
	return []Kind{KindBook, KindComic, KindJournal}
}

// ParseKind resolves s to a known kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kinds[k]
	return k, ok
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Label returns the display name for the kind.
func (k Kind) Label() string {
	if info, ok := kinds[k]; ok {
		return info.label
	}
	return string(k)
}

// AddRoute returns the page path for adding an item of this kind.
func (k Kind) AddRoute() string { return kinds[k].addRoute }

// EditRoute returns the page path for editing the item with the given ID.
func (k Kind) EditRoute(id ItemID) string {
	info, ok := kinds[k]
	if !ok {
		info = kinds[KindBook]
	}
	return fmt.Sprintf("%s/%s", info.editPrefix, id)
}

// ItemID is a server-assigned identifier. Backends are inconsistent about
// the JSON type, some emit numbers and some strings, so both are accepted
// and normalized to the string form.
type ItemID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid item id %s: %w", data, err)
	}
	*id = ItemID(n.String())
	return nil
}

// Item is one catalog entry. It is a union over the three kinds; the
// kind-specific fields are omitted from JSON when empty.
type Item struct {
	ID       ItemID `json:"id,omitempty"`
	LegacyID ItemID `json:"itemId,omitempty"`
	ItemType Kind   `json:"itemType"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Status      string `json:"status,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	PublishYear int    `json:"publishYear,omitempty"`

	// Books and comics.
	ISBN      string `json:"isbn,omitempty"`
	Publisher string `json:"publisher,omitempty"`

	// Books only.
	Edition   string `json:"edition,omitempty"`
	PageCount int    `json:"pageCount,omitempty"`
	Language  string `json:"language,omitempty"`
	Genre     string `json:"genre,omitempty"`

	// Comics only.
	Series       string `json:"series,omitempty"`
	VolumeNumber int    `json:"volumeNumber,omitempty"`
	Illustrator  string `json:"illustrator,omitempty"`
	ColorType    string `json:"colorType,omitempty"`
	TargetAge    string `json:"targetAge,omitempty"`

	// Journals only.
	ISSN                 string `json:"issn,omitempty"`
	Volume               string `json:"volume,omitempty"`
	Issue                string `json:"issue,omitempty"`
	PublicationFrequency string `json:"publicationFrequency,omitempty"`
}

// Key returns the item's identifier. Older records populate itemId
// instead of id, so that slot wins when both are present.
func (it Item) Key() ItemID {
	if it.LegacyID != "" {
		return it.LegacyID
	}
	return it.ID
}

// Cover returns the item's cover image URL, falling back to the
// placeholder when none is set.
func (it Item) Cover() string {
	if it.CoverImage != "" {
		return it.CoverImage
	}
	return PlaceholderCover
}

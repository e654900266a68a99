// internal/catalog/schema.go
package catalog

import "strconv"

// FieldKind selects the input widget rendered for a schema field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldURL      FieldKind = "url"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

// Field declares one entry of a kind's form schema: how it is rendered,
// whether it is required, and whether its value must parse as an integer.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Integer  bool
	Options  []string
}

// Shared leading and trailing fields; every kind's form starts and ends
// the same way.
var commonHead = []Field{
	{Name: "title", Label: "Title", Kind: FieldText, Required: true},
	{Name: "author", Label: "Author", Kind: FieldText, Required: true},
	{Name: "category", Label: "Category", Kind: FieldText, Required: true},
	{Name: "publishYear", Label: "Publish Year", Kind: FieldNumber, Required: true, Integer: true},
}

var commonTail = []Field{
	{Name: "coverImage", Label: "Cover Image URL", Kind: FieldURL},
	{Name: "description", Label: "Description", Kind: FieldTextarea},
	{Name: "location", Label: "Location", Kind: FieldText},
}

var schemas = map[Kind][]Field{
	KindBook: {
		{Name: "isbn", Label: "ISBN", Kind: FieldText, Required: true},
		{Name: "publisher", Label: "Publisher", Kind: FieldText},
		{Name: "edition", Label: "Edition", Kind: FieldText, Required: true},
		{Name: "pageCount", Label: "Page Count", Kind: FieldNumber, Required: true, Integer: true},
		{Name: "language", Label: "Language", Kind: FieldText, Required: true},
		{Name: "genre", Label: "Genre", Kind: FieldText, Required: true},
	},
	KindComic: {
		{Name: "isbn", Label: "ISBN", Kind: FieldText, Required: true},
		{Name: "series", Label: "Series", Kind: FieldText, Required: true},
		{Name: "volumeNumber", Label: "Volume Number", Kind: FieldNumber, Required: true, Integer: true},
		{Name: "illustrator", Label: "Illustrator", Kind: FieldText, Required: true},
		{Name: "colorType", Label: "Color Type", Kind: FieldText, Required: true},
		{Name: "targetAge", Label: "Target Age", Kind: FieldText, Required: true},
		{Name: "publisher", Label: "Publisher", Kind: FieldText},
	},
	KindJournal: {
		{Name: "issn", Label: "ISSN", Kind: FieldText},
		{Name: "volume", Label: "Volume", Kind: FieldText, Required: true},
		{Name: "issue", Label: "Issue", Kind: FieldText, Required: true},
		{Name: "publicationFrequency", Label: "Publication Frequency", Kind: FieldSelect, Required: true, Options: Frequencies},
		{Name: "publisher", Label: "Publisher", Kind: FieldText},
	},
}

// Schema returns the ordered form field list for the given kind. Unknown
// kinds get the book schema, matching the endpoint fallback policy.
func Schema(k Kind) []Field {
	specific, ok := schemas[k]
	if !ok {
		specific = schemas[KindBook]
	}
	fields := make([]Field, 0, len(commonHead)+len(specific)+len(commonTail))
	fields = append(fields, commonHead...)
	fields = append(fields, specific...)
	fields = append(fields, commonTail...)
	return fields
}

// Set stores value into the item field named by f, coercing integer
// fields. A non-integer value for an integer field is reported as an
// error; empty values are left at their zero value.
func (f Field) Set(it *Item, value string) error {
	if value == "" {
		return nil
	}
	if f.Integer {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		switch f.Name {
		case "publishYear":
			it.PublishYear = n
		case "pageCount":
			it.PageCount = n
		case "volumeNumber":
			it.VolumeNumber = n
		}
		return nil
	}

	switch f.Name {
	case "title":
		it.Title = value
	case "author":
		it.Author = value
	case "category":
		it.Category = value
	case "coverImage":
		it.CoverImage = value
	case "description":
		it.Description = value
	case "location":
		it.Location = value
	case "isbn":
		it.ISBN = value
	case "publisher":
		it.Publisher = value
	case "edition":
		it.Edition = value
	case "language":
		it.Language = value
	case "genre":
		it.Genre = value
	case "series":
		it.Series = value
	case "illustrator":
		it.Illustrator = value
	case "colorType":
		it.ColorType = value
	case "targetAge":
		it.TargetAge = value
	case "issn":
		it.ISSN = value
	case "volume":
		it.Volume = value
	case "issue":
		it.Issue = value
	case "publicationFrequency":
		it.PublicationFrequency = value
	}
	return nil
}

// Value reads the field named by f back out of the item, as the string
// form used to pre-fill update forms.
func (f Field) Value(it Item) string {
	if f.Integer {
		var n int
		switch f.Name {
		case "publishYear":
			n = it.PublishYear
		case "pageCount":
			n = it.PageCount
		case "volumeNumber":
			n = it.VolumeNumber
		}
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}

	switch f.Name {
	case "title":
		return it.Title
	case "author":
		return it.Author
	case "category":
		return it.Category
	case "coverImage":
		return it.CoverImage
	case "description":
		return it.Description
	case "location":
		return it.Location
	case "isbn":
		return it.ISBN
	case "publisher":
		return it.Publisher
	case "edition":
		return it.Edition
	case "language":
		return it.Language
	case "genre":
		return it.Genre
	case "series":
		return it.Series
	case "illustrator":
		return it.Illustrator
	case "colorType":
		return it.ColorType
	case "targetAge":
		return it.TargetAge
	case "issn":
		return it.ISSN
	case "volume":
		return it.Volume
	case "issue":
		return it.Issue
	case "publicationFrequency":
		return it.PublicationFrequency
	}
	return ""
}

package movies

import (
	"fmt"
	"strconv"
	"time"
)

// Field names a form field. The values match the names of the input controls.
type Field string

const (
	FieldTitle  Field = "title"
	FieldYear   Field = "year"
	FieldRating Field = "rating"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldTitle, FieldYear, FieldRating}

// ParseField maps a control name to a Field.
func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldTitle, FieldYear, FieldRating:
		return Field(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Movie is one record in the list.
// Year and Rating are kept as entered; no range checks apply.
type Movie struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Year   string `json:"year" yaml:"year"`
	Rating string `json:"rating" yaml:"rating"`
}

// NewMovie creates a record without an ID. The store assigns one when the
// record is added.
func NewMovie(title, year, rating string) Movie {
	return Movie{Title: title, Year: year, Rating: rating}
}

// Draft returns the editable fields of the record.
func (m Movie) Draft() Draft {
	return Draft{Title: m.Title, Year: m.Year, Rating: m.Rating}
}

// String formats the record the way a list row shows it.
func (m Movie) String() string {
	return fmt.Sprintf("%s (%s) Rating: %s", m.Title, m.Year, m.Rating)
}

// Draft is the record staged in the form.
type Draft struct {
	Title  string
	Year   string
	Rating string
}

// BlankDraft returns the default draft: empty title and rating, year of now.
func BlankDraft(now time.Time) Draft {
	return Draft{Year: strconv.Itoa(now.Year())}
}

// Get returns the value of a field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldYear:
		return d.Year
	case FieldRating:
		return d.Rating
	}
	return ""
}

// With returns a copy of the draft with one field replaced.
func (d Draft) With(f Field, value string) (Draft, error) {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldYear:
		d.Year = value
	case FieldRating:
		d.Rating = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return d, nil
}

// Movie turns the draft into a record carrying the given ID.
func (d Draft) Movie(id string) Movie {
	return Movie{ID: id, Title: d.Title, Year: d.Year, Rating: d.Rating}
}

// Seed returns the initial list of records.
func Seed() []Movie {
	return []Movie{
		NewMovie("Hero", "2012", "201"),
		NewMovie("Hello", "1956", "109"),
		NewMovie("Good Bye", "2021", "902"),
		NewMovie("Hello Sir!", "1987", "89"),
		NewMovie("Mr Charles", "2011", "321"),
		NewMovie("Combat One", "2023", "78"),
	}
}

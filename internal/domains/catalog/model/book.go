package model

import "github.com/shopspring/decimal"

// Book is a persisted book row. Author is only populated when preloaded.
type Book struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:100;not null"`
	Year     *int
	ISBN     string           `gorm:"column:isbn;size:50;not null"`
	Summary  string           `gorm:"size:500"`
	Cover    string           `gorm:"size:150"`
	Price    *decimal.Decimal `gorm:"type:decimal(18,2)"`
	AuthorID *uint            `gorm:"index"`

	Author *Author
}

func (Book) TableName() string {
	return "books"
}

// EditableColumns are replaced wholesale on update. id is never among them.
func (Book) EditableColumns() []string {
	return []string{"title", "year", "isbn", "summary", "cover", "price", "author_id"}
}

package model

// Author is a persisted author row.
// Books is a back-reference only: deleting an author never deletes its books,
// the foreign key restricts the delete instead.
type Author struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Bio       string `gorm:"size:250"`

	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Author) TableName() string {
	return "authors"
}

// EditableColumns are replaced wholesale on update. id is never among them.
func (Author) EditableColumns() []string {
	return []string{"first_name", "last_name", "bio"}
}

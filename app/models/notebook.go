package models

type Notebook struct {
	ProductFields     `gorm:"embedded"`
	Category          Category `gorm:"foreignKey:CategoryID"`
	Diagonal          string   `gorm:"size:255"`
	Display           string   `gorm:"size:255"`
	ProcessorFreq     string   `gorm:"size:255"`
	RAM               string   `gorm:"size:255"`
	Video             string   `gorm:"size:255"`
	TimeWithoutCharge string   `gorm:"size:255"`
}

func (n Notebook) Kind() ProductKind {
	return KindNotebook
}

func (n Notebook) URL() string {
	return productURL(KindNotebook, n.Slug)
}

package models

type Smartphone struct {
	ProductFields `gorm:"embedded"`
	Category      Category `gorm:"foreignKey:CategoryID"`
	Diagonal      string   `gorm:"size:255"`
	Display       string   `gorm:"size:255"`
	Resolution    string   `gorm:"size:255"`
	AccumVolume   string   `gorm:"size:255"`
	RAM           string   `gorm:"size:255"`
	SD            bool     `gorm:"default:true"`
	SDVolumeMax   string   `gorm:"size:255"`
	MainCamMP     string   `gorm:"size:255"`
	FrontalCamMP  string   `gorm:"size:255"`
}

func (s Smartphone) Kind() ProductKind {
	return KindSmartphone
}

func (s Smartphone) URL() string {
	return productURL(KindSmartphone, s.Slug)
}

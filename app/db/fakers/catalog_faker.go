package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/tvolodin/go-technoshop/app/models"
)

func productFields(category *models.Category) models.ProductFields {
	title := faker.Word() + " " + faker.Word()
	return models.ProductFields{
		CategoryID:  category.ID,
		Title:       title,
		Slug:        slug.Make(title + "-" + uuid.NewString()[:6]),
		Image:       "/images/products/placeholder.jpg",
		Description: faker.Paragraph(),
		Price:       fakePrice(),
	}
}

func NotebookFaker(category *models.Category) *models.Notebook {
	return &models.Notebook{
		ProductFields:     productFields(category),
		Diagonal:          fmt.Sprintf("%d.%d\"", 13+rand.Intn(4), rand.Intn(10)),
		Display:           "IPS",
		ProcessorFreq:     fmt.Sprintf("%d.%d ГГц", 2+rand.Intn(3), rand.Intn(10)),
		RAM:               fmt.Sprintf("%d ГБ", 8*(1+rand.Intn(4))),
		Video:             "GeForce RTX 3050",
		TimeWithoutCharge: fmt.Sprintf("%d часов", 6+rand.Intn(10)),
	}
}

func SmartphoneFaker(category *models.Category) *models.Smartphone {
	withSD := rand.Intn(2) == 0
	sdVolume := ""
	if withSD {
		sdVolume = fmt.Sprintf("%d ГБ", 128*(1+rand.Intn(4)))
	}
	return &models.Smartphone{
		ProductFields: productFields(category),
		Diagonal:      fmt.Sprintf("6.%d\"", rand.Intn(10)),
		Display:       "AMOLED",
		Resolution:    "2400x1080",
		AccumVolume:   fmt.Sprintf("%d мАч", 4000+500*rand.Intn(5)),
		RAM:           fmt.Sprintf("%d ГБ", 4*(1+rand.Intn(3))),
		SD:            withSD,
		SDVolumeMax:   sdVolume,
		MainCamMP:     fmt.Sprintf("%d Мп", 48+16*rand.Intn(5)),
		FrontalCamMP:  fmt.Sprintf("%d Мп", 8+8*rand.Intn(4)),
	}
}

func fakePrice() decimal.Decimal {
	rubles := 9990 + rand.Intn(140000)
	return decimal.New(int64(rubles), 0)
}

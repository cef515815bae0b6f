package spectable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvolodin/go-technoshop/app/models"
)

func testSmartphone(sd bool) *models.Smartphone {
	return &models.Smartphone{
		ProductFields: models.ProductFields{Title: "Galaxy S21", Slug: "galaxy-s21"},
		Diagonal:      "6.2\"",
		Display:       "AMOLED",
		Resolution:    "2400x1080",
		AccumVolume:   "4000 мАч",
		RAM:           "8 ГБ",
		SD:            sd,
		SDVolumeMax:   "512 ГБ",
		MainCamMP:     "64 Мп",
		FrontalCamMP:  "10 Мп",
	}
}

func TestNotebookRows(t *testing.T) {
	n := &models.Notebook{
		ProductFields:     models.ProductFields{Title: "ThinkPad", Slug: "thinkpad"},
		Diagonal:          "14\"",
		Display:           "IPS",
		ProcessorFreq:     "2.8 ГГц",
		RAM:               "16 ГБ",
		Video:             "Iris Xe",
		TimeWithoutCharge: "10 часов",
	}

	rows := Rows(n)
	require.Len(t, rows, 6)
	assert.Equal(t, Row{"Диагональ", "14\""}, rows[0])
	assert.Equal(t, Row{"Время работы аккумулятора", "10 часов"}, rows[5])
}

func TestSmartphoneRowsWithSD(t *testing.T) {
	rows := Rows(testSmartphone(true))

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	assert.Contains(t, labels, "Максимальный объем встраиваемой памяти")
	assert.Equal(t, "Да", rows[5].Value)
}

func TestSmartphoneRowsWithoutSD(t *testing.T) {
	rows := Rows(testSmartphone(false))

	for _, row := range rows {
		assert.NotEqual(t, "Максимальный объем встраиваемой памяти", row.Label)
	}
	assert.Equal(t, "Нет", rows[5].Value)
}

// Rendering a phone without an SD slot must not hide the max-memory row
// for phones rendered afterwards, in either order.
func TestRenderIsolationBetweenInstances(t *testing.T) {
	withoutSD := testSmartphone(false)
	withSD := testSmartphone(true)

	first := string(Render(withoutSD))
	second := string(Render(withSD))

	assert.NotContains(t, first, "Максимальный объем встраиваемой памяти")
	assert.Contains(t, second, "Максимальный объем встраиваемой памяти")

	// Reverse order as well.
	again := string(Render(withoutSD))
	assert.NotContains(t, again, "Максимальный объем встраиваемой памяти")
	assert.Contains(t, string(Render(withSD)), "512 ГБ")
}

func TestRenderProducesTable(t *testing.T) {
	html := string(Render(testSmartphone(true)))

	assert.True(t, strings.HasPrefix(html, "<table"))
	assert.Contains(t, html, "<td>Диагональ</td>")
	assert.Contains(t, html, "<td>6.2&#34;</td>")
}

func TestRowsUnknownKind(t *testing.T) {
	assert.Nil(t, Rows(unknownProduct{}))
}

type unknownProduct struct {
	models.ProductFields
}

func (unknownProduct) Kind() models.ProductKind { return "washingmachine" }
func (unknownProduct) URL() string              { return "" }

package spectable

import (
	"html/template"
	"log"
	"strings"

	"github.com/tvolodin/go-technoshop/app/models"
)

// Row is one (label, value) pair of a product's specification table.
type Row struct {
	Label string
	Value string
}

var tableTmpl = template.Must(template.New("spec").Parse(`<table class="table">
    <tbody>
{{- range . }}
        <tr>
            <td>{{ .Label }}</td>
            <td>{{ .Value }}</td>
        </tr>
{{- end }}
    </tbody>
</table>`))

// Rows builds the specification rows for a product. The per-kind field
// lists are fixed; any per-instance filtering (a smartphone without an SD
// slot drops the max-memory row) is computed into a fresh slice on every
// call so the shared configuration is never mutated.
func Rows(p models.ProductInfo) []Row {
	switch v := p.(type) {
	case *models.Notebook:
		return notebookRows(v)
	case *models.Smartphone:
		return smartphoneRows(v)
	default:
		log.Printf("spectable: no specification layout for kind %q", p.Kind())
		return nil
	}
}

// Render produces the HTML table fragment consumed by the page templates.
func Render(p models.ProductInfo) template.HTML {
	var b strings.Builder
	if err := tableTmpl.Execute(&b, Rows(p)); err != nil {
		log.Printf("spectable: failed to render table for %s/%s: %v", p.Kind(), p.GetSlug(), err)
		return ""
	}
	return template.HTML(b.String())
}

func notebookRows(n *models.Notebook) []Row {
	return []Row{
		{"Диагональ", n.Diagonal},
		{"Тип дисплея", n.Display},
		{"Частота процессора", n.ProcessorFreq},
		{"Оперативная память", n.RAM},
		{"Видеокарта", n.Video},
		{"Время работы аккумулятора", n.TimeWithoutCharge},
	}
}

func smartphoneRows(s *models.Smartphone) []Row {
	rows := []Row{
		{"Диагональ", s.Diagonal},
		{"Тип дисплея", s.Display},
		{"Разрешение экрана", s.Resolution},
		{"Оперативная память", s.RAM},
		{"Объем батареи", s.AccumVolume},
		{"Наличие слота для SD памяти", yesNo(s.SD)},
	}
	if s.SD {
		rows = append(rows, Row{"Максимальный объем встраиваемой памяти", s.SDVolumeMax})
	}
	rows = append(rows,
		Row{"Главная камера", s.MainCamMP},
		Row{"Фронтальная камера", s.FrontalCamMP},
	)
	return rows
}

func yesNo(b bool) string {
	if b {
		return "Да"
	}
	return "Нет"
}

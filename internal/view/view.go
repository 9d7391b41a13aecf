package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/form"
	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"price": FormatPrice,
	}).ParseFS(templateFS, "templates/*.html"),
)

// Item renders one food of the list.
// DeleteAction triggers handleDeleteFood(food.id) and EditAction
// triggers handleEditFood(food).
type Item struct {
	Food         models.Food
	DeleteAction string
	EditAction   string
}

// NewItem builds the list item of food
func NewItem(food models.Food) Item {
	id := strconv.FormatInt(food.ID, 10)
	return Item{
		Food:         food,
		DeleteAction: "/foods/" + id + "/delete",
		EditAction:   "/foods/" + id + "/edit",
	}
}

// ModalView is a food form ready to render
type ModalView struct {
	Open   bool
	Title  string
	Action string
	Close  string
	Values form.Values
}

// Page is the whole dashboard
type Page struct {
	Items     []Item
	AddModal  ModalView
	EditModal ModalView
}

// NewPage builds the page for a dashboard state and its two modals
func NewPage(st dashboard.State, addModal, editModal *form.Modal) Page {
	items := make([]Item, 0, len(st.Foods))
	for _, f := range st.Foods {
		items = append(items, NewItem(f))
	}

	return Page{
		Items: items,
		AddModal: ModalView{
			Open:   addModal.IsOpen(),
			Title:  "New dish",
			Action: "/foods",
			Close:  "/modals/add",
			Values: addModal.InitialValues(),
		},
		EditModal: ModalView{
			Open:   editModal.IsOpen(),
			Title:  "Edit dish",
			Action: "/foods/editing",
			Close:  "/modals/edit",
			Values: editModal.InitialValues(),
		},
	}
}

// Render writes the dashboard HTML
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// FormatPrice shows a price with two decimals
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

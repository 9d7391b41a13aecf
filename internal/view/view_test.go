package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/form"
	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

func TestNewItem(t *testing.T) {
	item := NewItem(models.Food{ID: 12, Name: "A"})

	if item.DeleteAction != "/foods/12/delete" {
		t.Errorf("unexpected delete action %s", item.DeleteAction)
	}
	if item.EditAction != "/foods/12/edit" {
		t.Errorf("unexpected edit action %s", item.EditAction)
	}
}

func TestRender(t *testing.T) {
	editing := models.Food{ID: 2, Name: "Veggie <b>", Image: "v.png", Price: 21.9, Description: "Greens"}
	st := dashboard.State{
		Foods: []models.Food{
			{ID: 1, Name: "Ao molho", Price: 19.9, Available: true},
			editing,
		},
		EditingFood:   editing,
		EditModalOpen: true,
	}

	addModal := form.NewAddModal(func() bool { return st.AddModalOpen }, func() {}, nil)
	editModal := form.NewEditModal(func() bool { return st.EditModalOpen }, func() models.Food { return st.EditingFood }, func() {}, nil)

	var buf bytes.Buffer
	if err := Render(&buf, NewPage(st, addModal, editModal)); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`data-testid="food-1"`,
		`data-testid="food-2"`,
		`action="/foods/1/delete"`,
		`action="/foods/2/edit"`,
		`<b>19.90</b>`,
		`action="/foods/editing"`,
		`value="21.9"`,
		`Veggie &lt;b&gt;`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	if strings.Contains(html, `action="/foods">`) || strings.Contains(html, "New dish</h2>") {
		t.Error("add modal must not render while closed")
	}
	if !strings.Contains(html, `class="unavailable"`) {
		t.Error("expected unavailable food to be marked")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(5); got != "5.00" {
		t.Errorf("FormatPrice(5) = %s", got)
	}
}

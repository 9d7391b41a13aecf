package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/Lixing-Zhang/food-dashboard/internal/models"
)

var (
	ErrInvalidPrice = errors.New("price must be a decimal number")
)

// Mode tells which dashboard modal a form belongs to
type Mode int

const (
	Add Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "add"
}

// Values are the fields bound to the food form
type Values struct {
	Name        string
	Image       string
	Price       string
	Description string
}

// ValuesOf pre-fills the form with the fields of food
func ValuesOf(food models.Food) Values {
	return Values{
		Name:        food.Name,
		Image:       food.Image,
		Price:       formatPrice(food.Price),
		Description: food.Description,
	}
}

// DecodeValues reads the form fields from a submitted form
func DecodeValues(form url.Values) Values {
	return Values{
		Name:        form.Get("name"),
		Image:       form.Get("image"),
		Price:       strings.TrimSpace(form.Get("price")),
		Description: form.Get("description"),
	}
}

// Input converts the submitted values into a food input.
// An empty price is zero; anything else must parse as a decimal.
func (v Values) Input() (models.FoodInput, error) {
	var price float64
	if v.Price != "" {
		p, err := strconv.ParseFloat(strings.Replace(v.Price, ",", ".", 1), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return models.FoodInput{}, fmt.Errorf("%w: %q", ErrInvalidPrice, v.Price)
		}
		price = p
	}

	return models.FoodInput{
		Name:        v.Name,
		Image:       v.Image,
		Price:       price,
		Description: v.Description,
	}, nil
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// AddFunc receives the submitted add form
type AddFunc func(ctx context.Context, input models.FoodInput) error

// UpdateFunc receives the submitted edit form as a patch together with
// the food the form was editing when it was submitted
type UpdateFunc func(ctx context.Context, editing models.Food, patch models.FoodPatch) error

// Modal is a controlled food form shown in one of the dashboard modals.
// Submitting invokes the owner's callback and then asks the owner to
// close the modal.
type Modal struct {
	mode           Mode
	isOpen         func() bool
	initial        func() models.Food
	onRequestClose func()
	onAdd          AddFunc
	onUpdate       UpdateFunc

	pending sync.WaitGroup
}

// NewAddModal creates the add form. Its fields always start empty.
func NewAddModal(isOpen func() bool, onRequestClose func(), onAdd AddFunc) *Modal {
	return &Modal{
		mode:           Add,
		isOpen:         isOpen,
		onRequestClose: onRequestClose,
		onAdd:          onAdd,
	}
}

// NewEditModal creates the edit form pre-filled with editing()
func NewEditModal(isOpen func() bool, editing func() models.Food, onRequestClose func(), onUpdate UpdateFunc) *Modal {
	return &Modal{
		mode:           Edit,
		isOpen:         isOpen,
		initial:        editing,
		onRequestClose: onRequestClose,
		onUpdate:       onUpdate,
	}
}

// Mode returns the modal kind
func (m *Modal) Mode() Mode {
	return m.mode
}

// IsOpen reports whether the owner shows the modal
func (m *Modal) IsOpen() bool {
	return m.isOpen()
}

// InitialValues are the values the form renders with
func (m *Modal) InitialValues() Values {
	if m.mode == Add {
		return Values{}
	}
	return ValuesOf(m.initial())
}

// Submit hands the form values to the owner and closes the modal.
// The add form waits for the callback before closing; the edit form
// captures the food being edited, closes right away and the update runs
// in the background (see Wait).
// Only a malformed price stops the submission.
func (m *Modal) Submit(ctx context.Context, v Values) error {
	input, err := v.Input()
	if err != nil {
		return err
	}

	switch m.mode {
	case Edit:
		patch := models.PatchFromInput(input)
		editing := m.initial()
		bg := context.WithoutCancel(ctx)
		m.pending.Add(1)
		go func() {
			defer m.pending.Done()
			_ = m.onUpdate(bg, editing, patch)
		}()
		m.onRequestClose()
		return nil
	default:
		err := m.onAdd(ctx, input)
		m.onRequestClose()
		return err
	}
}

// Wait blocks until every background submission has finished
func (m *Modal) Wait() {
	m.pending.Wait()
}

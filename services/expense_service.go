package services

import (
	"context"
	"strings"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
)

type ExpenseService struct {
	store *repository.Store
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

func NewExpenseService(store *repository.Store, loc *time.Location) *ExpenseService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseService{store: store, loc: loc, now: time.Now, newID: utils.GenerateID}
}

// ExpenseInput is the admin form for an expense.
type ExpenseInput struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Provider    string `json:"provider"`
	Notes       string `json:"notes"`
	Image       string `json:"image"`
}

func (s *ExpenseService) List(ctx context.Context, start, end string) ([]models.Expense, error) {
	return s.store.Expenses.List(ctx, start, end)
}

// Create records an expense. Date defaults to today and category to Insumos.
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	e := models.Expense{
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        strings.TrimSpace(in.Date),
		Category:    strings.TrimSpace(in.Category),
		Provider:    strings.TrimSpace(in.Provider),
		Notes:       strings.TrimSpace(in.Notes),
		Image:       in.Image,
	}
	if e.Description == "" || e.Amount <= 0 {
		return nil, invalid("Completa la descripción y un monto mayor a cero.")
	}
	if e.Date == "" {
		e.Date = utils.FormatDate(s.now().In(s.loc))
	} else if _, err := utils.ParseDate(e.Date, s.loc); err != nil {
		return nil, invalid("Fecha inválida.")
	}
	if e.Category == "" {
		e.Category = models.DefaultExpenseCategory
	}

	id, err := uniqueID(ctx, s.newID, s.store.Expenses.Exists)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if err := s.store.Expenses.Create(ctx, &e); err != nil {
		return nil, err
	}
	log.Info().Str("expense_id", e.ID).Int64("amount", e.Amount).Msg("expense recorded")
	return &e, nil
}

// AttachReceipt stores a compressed receipt image on the expense.
func (s *ExpenseService) AttachReceipt(ctx context.Context, id, image string) (*models.Expense, error) {
	e, err := s.store.Expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Image = image
	if err := s.store.Expenses.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.store.Expenses.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"
)

// ComputeStats sums completed appointment amounts as income and every expense.
func ComputeStats(appointments []models.Appointment, expenses []models.Expense) models.FinancialStats {
	var st models.FinancialStats
	for i := range appointments {
		if appointments[i].Status == models.StatusCompleted {
			st.Income += appointments[i].Amount
		}
	}
	for i := range expenses {
		st.Expenses += expenses[i].Amount
	}
	st.Net = st.Income - st.Expenses
	return st
}

func inRange(date, start, end string) bool {
	return date >= start && date <= end
}

// ComputePeriod restricts ComputeStats to records dated within [start, end].
// Items holds only the completed appointments that count as income.
func ComputePeriod(appointments []models.Appointment, expenses []models.Expense, start, end string) models.PeriodReport {
	r := models.PeriodReport{Start: start, End: end}
	for _, a := range appointments {
		if a.Status == models.StatusCompleted && inRange(a.Date, start, end) {
			r.Items = append(r.Items, a)
		}
	}
	for _, e := range expenses {
		if inRange(e.Date, start, end) {
			r.ExpenseItems = append(r.ExpenseItems, e)
		}
	}
	r.FinancialStats = ComputeStats(r.Items, r.ExpenseItems)
	return r
}

// FinanceService builds reports and dashboards from stored data.
type FinanceService struct {
	store *repository.Store
	loc   *time.Location
	now   func() time.Time
}

func NewFinanceService(store *repository.Store, loc *time.Location) *FinanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &FinanceService{store: store, loc: loc, now: time.Now}
}

func (s *FinanceService) today() time.Time {
	return utils.BeginningOfDay(s.now().In(s.loc))
}

// Report returns the audit of [start, end]. Empty bounds default to the first
// of the current month and today.
func (s *FinanceService) Report(ctx context.Context, start, end string) (*models.PeriodReport, error) {
	today := s.today()
	if start == "" {
		start = utils.FormatDate(utils.FirstOfMonth(today))
	}
	if end == "" {
		end = utils.FormatDate(today)
	}
	if _, err := utils.ParseDate(start, s.loc); err != nil {
		return nil, invalid("Fecha de inicio inválida.")
	}
	if _, err := utils.ParseDate(end, s.loc); err != nil {
		return nil, invalid("Fecha de fin inválida.")
	}
	if start > end {
		return nil, invalid("La fecha de inicio debe ser anterior a la fecha de fin.")
	}

	appts, err := s.store.Appointments.List(ctx, repository.AppointmentFilter{
		Status: models.StatusCompleted, Start: start, End: end,
	})
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.Expenses.List(ctx, start, end)
	if err != nil {
		return nil, err
	}
	r := ComputePeriod(appts, expenses, start, end)
	return &r, nil
}

// UpcomingAppointment is an agenda entry with a relative day label.
type UpcomingAppointment struct {
	models.Appointment
	When string `json:"when"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	Totals              models.FinancialStats              `json:"totals"`
	MonthIncome         int64                              `json:"monthIncome"`
	PreviousMonthIncome int64                              `json:"previousMonthIncome"`
	MonthGrowth         float64                            `json:"monthGrowth"`
	Today               string                             `json:"today"`
	TodayAgenda         []models.Appointment               `json:"todayAgenda"`
	Upcoming            []UpcomingAppointment              `json:"upcoming"`
	StatusCounts        map[models.AppointmentStatus]int64 `json:"statusCounts"`
	TotalClients        int                                `json:"totalClients"`
}

const upcomingDays = 7

func (s *FinanceService) Dashboard(ctx context.Context) (*Dashboard, error) {
	appts, err := s.store.Appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.Expenses.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	counts, err := s.store.Appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	firstOfMonth := utils.FirstOfMonth(today)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	firstOfPrev := firstOfMonth.AddDate(0, -1, 0)
	lastOfPrev := firstOfMonth.AddDate(0, 0, -1)

	month := ComputePeriod(appts, expenses, utils.FormatDate(firstOfMonth), utils.FormatDate(lastOfMonth))
	prev := ComputePeriod(appts, expenses, utils.FormatDate(firstOfPrev), utils.FormatDate(lastOfPrev))

	d := &Dashboard{
		Totals:              ComputeStats(appts, expenses),
		MonthIncome:         month.Income,
		PreviousMonthIncome: prev.Income,
		MonthGrowth:         calculateGrowthPercentage(float64(month.Income), float64(prev.Income)),
		Today:               utils.FormatDate(today),
		TodayAgenda:         []models.Appointment{},
		Upcoming:            []UpcomingAppointment{},
		StatusCounts:        counts,
	}

	phones := make(map[string]bool)
	for _, a := range appts {
		phones[a.Phone] = true
		if !a.HoldsSlot() {
			continue
		}
		day, err := utils.ParseDate(a.Date, s.loc)
		if err != nil {
			continue
		}
		diff := utils.DaysBetween(today, day)
		switch {
		case diff == 0:
			d.TodayAgenda = append(d.TodayAgenda, a)
		case diff > 0 && diff <= upcomingDays:
			d.Upcoming = append(d.Upcoming, UpcomingAppointment{Appointment: a, When: relativeDay(diff)})
		}
	}
	d.TotalClients = len(phones)

	sort.SliceStable(d.TodayAgenda, func(i, j int) bool { return d.TodayAgenda[i].Time < d.TodayAgenda[j].Time })
	sort.SliceStable(d.Upcoming, func(i, j int) bool {
		a, b := d.Upcoming[i], d.Upcoming[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
	return d, nil
}

func relativeDay(days int) string {
	if days == 1 {
		return "Mañana"
	}
	return fmt.Sprintf("En %d días", days)
}

func calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

// ClientSummary aggregates the history of one phone.
type ClientSummary struct {
	Phone          string                  `json:"phone"`
	ClientName     string                  `json:"clientName"`
	Visits         int                     `json:"visits"`
	CompletedSpend int64                   `json:"completedSpend"`
	LastDate       string                  `json:"lastDate"`
	Favorite       *models.FavoriteBooking `json:"favorite,omitempty"`
	UsedQuotes     []int                   `json:"usedQuotes"`
}

// Clients returns one summary per phone, most recent visit first. search
// matches name or phone, case-insensitive.
func (s *FinanceService) Clients(ctx context.Context, search string) ([]ClientSummary, error) {
	appts, err := s.store.Appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.store.Favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.store.ClientHistory.All(ctx)
	if err != nil {
		return nil, err
	}

	favByPhone := make(map[string]*models.FavoriteBooking, len(favorites))
	for i := range favorites {
		favByPhone[favorites[i].Phone] = &favorites[i]
	}

	byPhone := make(map[string]*ClientSummary)
	// appts are newest first, so the first name seen is the latest one used.
	for _, a := range appts {
		cs, ok := byPhone[a.Phone]
		if !ok {
			cs = &ClientSummary{Phone: a.Phone, ClientName: a.ClientName, UsedQuotes: []int{}}
			byPhone[a.Phone] = cs
		}
		cs.Visits++
		if a.Status == models.StatusCompleted {
			cs.CompletedSpend += a.Amount
		}
		if a.Date > cs.LastDate {
			cs.LastDate = a.Date
		}
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]ClientSummary, 0, len(byPhone))
	for phone, cs := range byPhone {
		if search != "" && !strings.Contains(strings.ToLower(cs.ClientName), search) && !strings.Contains(phone, search) {
			continue
		}
		cs.Favorite = favByPhone[phone]
		if used, ok := history[phone]; ok {
			cs.UsedQuotes = used
		}
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastDate != out[j].LastDate {
			return out[i].LastDate > out[j].LastDate
		}
		return out[i].Phone < out[j].Phone
	})
	return out, nil
}

// CalendarDay is the per-day summary of the month view.
type CalendarDay struct {
	Date      string `json:"date"`
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
}

// CalendarMonth returns one entry per day of month (YYYY-MM).
func (s *FinanceService) CalendarMonth(ctx context.Context, month string) ([]CalendarDay, error) {
	if month == "" {
		month = s.today().Format("2006-01")
	}
	first, err := time.ParseInLocation("2006-01", month, s.loc)
	if err != nil {
		return nil, invalid("Mes inválido, usa el formato AAAA-MM.")
	}
	last := first.AddDate(0, 1, -1)

	appts, err := s.store.Appointments.List(ctx, repository.AppointmentFilter{
		Start: utils.FormatDate(first), End: utils.FormatDate(last),
	})
	if err != nil {
		return nil, err
	}

	days := make([]CalendarDay, 0, last.Day())
	index := make(map[string]int, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		index[utils.FormatDate(d)] = len(days)
		days = append(days, CalendarDay{Date: utils.FormatDate(d)})
	}
	for _, a := range appts {
		i, ok := index[a.Date]
		if !ok {
			continue
		}
		days[i].Total++
		if a.HoldsSlot() {
			days[i].Active++
		} else {
			days[i].Completed++
		}
	}
	return days, nil
}

package client

import (
	"sync"
)

// DayTracker mirrors the dashboard's state for one selected date: a cached
// slice of logs plus loading/error flags. Consistency comes from refetching
// the whole day after every successful mutation; the cache is never spliced
// in place. A refresh that fails keeps the previous cache visible.
type DayTracker struct {
	api *API

	mu           sync.Mutex
	selectedDate string
	logs         []FoodLog
	loading      bool
	err          error
}

func NewDayTracker(api *API, date string) *DayTracker {
	return &DayTracker{api: api, selectedDate: date}
}

// SetDate switches the tracked date and refetches it.
func (t *DayTracker) SetDate(date string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectedDate = date
	t.refreshLocked()
}

// Refresh refetches the selected date's logs, replacing the cache wholesale.
func (t *DayTracker) Refresh() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refreshLocked()
}

func (t *DayTracker) refreshLocked() {
	t.loading = true
	logs, err := t.api.GetLogs(t.selectedDate)
	t.loading = false
	if err != nil {
		// keep the stale cache visible
		t.err = err
		return
	}
	t.logs = logs
	t.err = nil
}

// AddFood submits a new log for the selected date and resynchronizes.
func (t *DayTracker) AddFood(items []FoodItemInput) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.api.AddLog(t.selectedDate, items); err != nil {
		t.err = err
		return err
	}
	t.refreshLocked()
	return nil
}

// UpdateFoodItem patches one item and resynchronizes.
func (t *DayTracker) UpdateFoodItem(logID, foodItemID uint, update FoodItemUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.api.UpdateFoodItem(logID, foodItemID, update); err != nil {
		t.err = err
		return err
	}
	t.refreshLocked()
	return nil
}

// DeleteFoodItem removes one item and resynchronizes.
func (t *DayTracker) DeleteFoodItem(logID, foodItemID uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.api.DeleteFoodItem(logID, foodItemID); err != nil {
		t.err = err
		return err
	}
	t.refreshLocked()
	return nil
}

func (t *DayTracker) Date() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedDate
}

// Logs returns a copy of the cached logs for the selected date.
func (t *DayTracker) Logs() []FoodLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]FoodLog, len(t.logs))
	copy(out, t.logs)
	return out
}

func (t *DayTracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *DayTracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// TotalCalories sums calories*quantity over the cached logs. Items missing
// either number contribute 0; the zero values never poison the total.
func (t *DayTracker) TotalCalories() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total float64
	for _, l := range t.logs {
		for _, it := range l.FoodItems {
			total += it.Calories * it.Quantity
		}
	}
	return total
}

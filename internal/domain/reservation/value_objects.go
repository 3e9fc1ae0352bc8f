package reservation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrNegativeMoney      = errors.New("money cannot be negative")
	ErrMoneyTooLarge      = errors.New("money exceeds the maximum amount")
	ErrInvalidEventDate   = errors.New("event date must be formatted as YYYY-MM-DD")
	ErrInvalidEventTime   = errors.New("event time must be formatted as HH:MM")
	ErrInvalidGuestCount  = errors.New("guest count must be at least 1")
	ErrGuestCountTooLarge = errors.New("guest count exceeds the maximum")
	ErrEventDateNotFuture = errors.New("event date must be after today")
)

const eventDateLayout = "2006-01-02"

const (
	// MaxAmount is the largest peso amount accepted from input; its cents fit a float64 exactly.
	MaxAmount = 999999999999.99
	maxCents  = 99999999999999

	MaxGuestCount = math.MaxInt32
)

var eventTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Money is an amount in centavos.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MoneyFromAmount converts a decimal peso amount, rounding to the nearest centavo.
func MoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) {
		return Money{}, ErrNegativeMoney
	}
	if amount > MaxAmount {
		return Money{}, ErrMoneyTooLarge
	}
	cents := int64(math.Round(amount * 100))
	if cents > maxCents {
		return Money{}, ErrMoneyTooLarge
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// Add saturates at math.MaxInt64 instead of wrapping.
func (m Money) Add(other Money) Money {
	if other.cents > math.MaxInt64-m.cents {
		return Money{cents: math.MaxInt64}
	}
	return Money{cents: m.cents + other.cents}
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// Sub returns m - other, floored at zero.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// EventDate is a calendar date without a clock component.
type EventDate struct {
	year  int
	month time.Month
	day   int
}

func NewEventDate(s string) (EventDate, error) {
	t, err := time.Parse(eventDateLayout, s)
	if err != nil {
		return EventDate{}, ErrInvalidEventDate
	}
	return EventDateOf(t), nil
}

func EventDateOf(t time.Time) EventDate {
	y, m, d := t.Date()
	return EventDate{year: y, month: m, day: d}
}

// After reports whether the date falls on a later calendar day than now in now's location.
func (d EventDate) After(now time.Time) bool {
	today := EventDateOf(now)
	return d.Time().After(today.Time())
}

func (d EventDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d EventDate) String() string {
	return d.Time().Format(eventDateLayout)
}

type EventTime struct {
	minutes int
}

func NewEventTime(s string) (EventTime, error) {
	m := eventTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return EventTime{}, ErrInvalidEventTime
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return EventTime{minutes: h*60 + mm}, nil
}

func EventTimeFromMinutes(minutes int) (EventTime, error) {
	if minutes < 0 || minutes >= 24*60 {
		return EventTime{}, ErrInvalidEventTime
	}
	return EventTime{minutes: minutes}, nil
}

func (t EventTime) MinutesOfDay() int {
	return t.minutes
}

func (t EventTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < 1 {
		return GuestCount{}, ErrInvalidGuestCount
	}
	if n > MaxGuestCount {
		return GuestCount{}, ErrGuestCountTooLarge
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

// FoodItem is one selected food line. A missing price counts as zero.
type FoodItem struct {
	name  *string
	price *Money
}

func NewFoodItem(name *string, price *Money) FoodItem {
	return FoodItem{name: name, price: price}
}

func (f FoodItem) Name() *string { return f.name }
func (f FoodItem) Price() *Money { return f.price }

func (f FoodItem) Cost() Money {
	if f.price == nil {
		return Money{}
	}
	return *f.price
}

func TotalCost(foods []FoodItem) Money {
	var total Money
	for _, f := range foods {
		total = total.Add(f.Cost())
	}
	return total
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"beautyhub/shared/clock"
)

var (
	ErrUnknownWeekday   = errors.New("unknown weekday")
	ErrIncompleteHours  = errors.New("opening hours need both open and close")
	ErrEmptyOpenWindow  = errors.New("open must be before close")
	ErrScheduleEncoding = errors.New("unsupported schedule encoding")
)

// OpeningHours is one weekday's interval in "HH:MM". Both empty means closed.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

func (h *OpeningHours) closed() bool {
	return h == nil || (h.Open == "" && h.Close == "")
}

// Window is an open interval in minutes since midnight.
type Window struct {
	Open  int
	Close int
}

// Span returns the number of minutes the shop is open.
func (w Window) Span() int {
	return w.Close - w.Open
}

// Fits reports whether [start, start+duration] lies inside the window.
func (w Window) Fits(start, duration int) bool {
	return start >= w.Open && start+duration <= w.Close
}

// WeeklySchedule maps lowercase English weekday names to opening hours.
// A missing or null entry is a closed day.
type WeeklySchedule map[string]*OpeningHours

func WeekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// DefaultSchedule is used when a shop is created without hours.
func DefaultSchedule() WeeklySchedule {
	weekday := func() *OpeningHours { return &OpeningHours{Open: "09:00", Close: "20:00"} }

	return WeeklySchedule{
		WeekdayKey(time.Monday):    weekday(),
		WeekdayKey(time.Tuesday):   weekday(),
		WeekdayKey(time.Wednesday): weekday(),
		WeekdayKey(time.Thursday):  weekday(),
		WeekdayKey(time.Friday):    {Open: "09:00", Close: "21:00"},
		WeekdayKey(time.Saturday):  {Open: "08:00", Close: "18:00"},
		WeekdayKey(time.Sunday):    nil,
	}
}

// For returns the hours configured for day, or nil when the shop is closed.
func (s WeeklySchedule) For(day time.Weekday) *OpeningHours {
	hours := s[WeekdayKey(day)]
	if hours.closed() {
		return nil
	}

	return hours
}

// Window parses the hours for day. open is false for a closed day; err is set
// only when the entry exists but cannot be used.
func (s WeeklySchedule) Window(day time.Weekday) (window Window, open bool, err error) {
	hours := s.For(day)
	if hours == nil {
		return window, false, nil
	}

	if hours.Open == "" || hours.Close == "" {
		return window, false, fmt.Errorf("%s: %w", WeekdayKey(day), ErrIncompleteHours)
	}

	if window.Open, err = clock.Parse(hours.Open); err != nil {
		return window, false, fmt.Errorf("%s open: %w", WeekdayKey(day), err)
	}

	if window.Close, err = clock.Parse(hours.Close); err != nil {
		return window, false, fmt.Errorf("%s close: %w", WeekdayKey(day), err)
	}

	if window.Open >= window.Close {
		return window, false, fmt.Errorf("%s: %w", WeekdayKey(day), ErrEmptyOpenWindow)
	}

	return window, true, nil
}

// Validate checks every entry of the schedule.
func (s WeeklySchedule) Validate() error {
	known := make(map[string]time.Weekday, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		known[WeekdayKey(day)] = day
	}

	for key := range s {
		day, ok := known[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownWeekday, key)
		}

		if _, _, err := s.Window(day); err != nil {
			return err
		}
	}

	return nil
}

// OpenDays counts the weekdays with usable hours.
func (s WeeklySchedule) OpenDays() int {
	count := 0

	for day := time.Sunday; day <= time.Saturday; day++ {
		if _, open, err := s.Window(day); err == nil && open {
			count++
		}
	}

	return count
}

func (s WeeklySchedule) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	return string(payload), nil
}

func (s *WeeklySchedule) Scan(src any) error {
	var payload []byte

	switch value := src.(type) {
	case nil:
		*s = WeeklySchedule{}

		return nil
	case []byte:
		payload = value
	case string:
		payload = []byte(value)
	default:
		return fmt.Errorf("%w: %T", ErrScheduleEncoding, src)
	}

	decoded := WeeklySchedule{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("failed to decode schedule: %w", err)
	}

	*s = decoded

	return nil
}

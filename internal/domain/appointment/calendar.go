package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewYearMonth(year, month int) (YearMonth, error) {
	ym := YearMonth{Year: year, Month: time.Month(month)}
	if err := ym.Validate(); err != nil {
		return YearMonth{}, err
	}
	return ym, nil
}

func YearMonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (ym YearMonth) Validate() error {
	if ym.Month < time.January || ym.Month > time.December {
		return httperr.ErrInvalidArgument(CodeInvalidMonth)
	}
	if ym.Year < 1 || ym.Year > 9999 {
		return httperr.ErrInvalidArgument(CodeInvalidYear)
	}
	return nil
}

func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func NextMonth(ym YearMonth) YearMonth {
	return shiftMonth(ym, 1)
}

func PreviousMonth(ym YearMonth) YearMonth {
	return shiftMonth(ym, -1)
}

func shiftMonth(ym YearMonth, delta int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-1) + delta
	return YearMonth{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// ===============================
// Cells
// ===============================

type CalendarCell struct {
	Date             Date          `json:"date"`
	IsCurrentMonth   bool          `json:"is_current_month"`
	IsToday          bool          `json:"is_today"`
	AppointmentCount int           `json:"appointment_count"`
	Preview          []Appointment `json:"preview"`
	Overflow         int           `json:"overflow"`
}

// CellsForMonth returns one cell per day of ym in ascending order. Each cell
// previews at most previewLimit of the day's appointments in time order.
func CellsForMonth(
	ym YearMonth,
	today Date,
	appointments []Appointment,
	previewLimit int,
) ([]CalendarCell, error) {

	if err := ym.Validate(); err != nil {
		return nil, err
	}
	if previewLimit < 0 {
		previewLimit = 0
	}

	byDay := make(map[Date][]Appointment)
	for _, ap := range appointments {
		if YearMonthOf(ap.Date) == ym {
			byDay[ap.Date] = append(byDay[ap.Date], ap)
		}
	}

	days := ym.Days()
	cells := make([]CalendarCell, 0, days)
	for day := 1; day <= days; day++ {
		date := Date{Year: ym.Year, Month: ym.Month, Day: day}
		onDay := byDay[date]
		sort.SliceStable(onDay, func(i, j int) bool {
			return compareAppointments(onDay[i], onDay[j]) < 0
		})

		preview := onDay
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}

		cells = append(cells, CalendarCell{
			Date:             date,
			IsCurrentMonth:   true,
			IsToday:          date == today,
			AppointmentCount: len(onDay),
			Preview:          append([]Appointment{}, preview...),
			Overflow:         len(onDay) - len(preview),
		})
	}

	return cells, nil
}

package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSlotsForDate_MarksOccupiedLabel(t *testing.T) {
	day := mustDate(t, "2024-05-01")
	template := []string{"09:00", "10:00", "11:00"}
	aps := []Appointment{
		{ID: "a1", Date: day, Time: "10:00", ServiceType: ServiceHaircut, ServiceName: "Cut"},
	}

	slots := SlotsForDate(day, template, aps)

	require.Len(t, slots, 3)
	assert.Equal(t, TimeSlot{Time: "09:00", IsAvailable: true}, slots[0])
	assert.Equal(t, TimeSlot{
		Time:          "10:00",
		IsAvailable:   false,
		AppointmentID: "a1",
		ServiceType:   ServiceHaircut,
		ServiceName:   "Cut",
	}, slots[1])
	assert.Equal(t, TimeSlot{Time: "11:00", IsAvailable: true}, slots[2])
}

func TestSlotsForDate_OneSlotPerTemplateLabel(t *testing.T) {
	day := mustDate(t, "2024-05-01")
	other := day.AddDays(1)

	tests := []struct {
		name     string
		template []string
		aps      []Appointment
		booked   map[string]bool
	}{
		{
			name:     "empty store",
			template: []string{"9:00 AM", "10:00 AM"},
			booked:   map[string]bool{},
		},
		{
			name:     "other day does not count",
			template: []string{"9:00 AM", "10:00 AM"},
			aps:      []Appointment{{ID: "x", Date: other, Time: "9:00 AM"}},
			booked:   map[string]bool{},
		},
		{
			name:     "label outside template is ignored",
			template: []string{"9:00 AM"},
			aps:      []Appointment{{ID: "x", Date: day, Time: "9:30 AM"}},
			booked:   map[string]bool{},
		},
		{
			name:     "label equality is exact",
			template: []string{"9:00 AM", "09:00 AM"},
			aps:      []Appointment{{ID: "x", Date: day, Time: "9:00 AM"}},
			booked:   map[string]bool{"9:00 AM": true},
		},
		{
			name:     "every slot booked",
			template: []string{"1:00 PM", "2:00 PM"},
			aps: []Appointment{
				{ID: "b", Date: day, Time: "2:00 PM"},
				{ID: "a", Date: day, Time: "1:00 PM"},
			},
			booked: map[string]bool{"1:00 PM": true, "2:00 PM": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := SlotsForDate(day, tt.template, tt.aps)
			require.Len(t, slots, len(tt.template))
			for i, slot := range slots {
				assert.Equal(t, tt.template[i], slot.Time)
				assert.Equal(t, !tt.booked[slot.Time], slot.IsAvailable, slot.Time)
			}
		})
	}
}

func TestSlotsForDate_IgnoresTimeOfDayAndOffset(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	lateEvening := time.Date(2024, 5, 1, 23, 30, 0, 0, tokyo)

	aps := []Appointment{{ID: "a", Date: DateOf(lateEvening), Time: "10:00"}}

	slots := SlotsForDate(DateOf(time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC)), []string{"10:00"}, aps)
	require.Len(t, slots, 1)
	assert.False(t, slots[0].IsAvailable)
}

func TestAppointmentsForDate(t *testing.T) {
	day := mustDate(t, "2024-05-01")
	aps := []Appointment{
		{ID: "1", Date: day, Time: "11:00"},
		{ID: "2", Date: day.AddDays(1), Time: "09:00"},
		{ID: "3", Date: day, Time: "09:00"},
	}

	got := AppointmentsForDate(day, aps)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, AppointmentsForDate(day.AddDays(5), aps))
	assert.NotNil(t, AppointmentsForDate(day.AddDays(5), aps))
}

func TestSummarizeSlots(t *testing.T) {
	slots := []TimeSlot{
		{Time: "9:00 AM", IsAvailable: true},
		{Time: "10:00 AM", IsAvailable: false},
		{Time: "11:00 AM", IsAvailable: true},
	}
	assert.Equal(t, DaySummary{Available: 2, Booked: 1}, SummarizeSlots(slots))
}

package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

func TestCommitRequestBuild(t *testing.T) {
	schedule := DefaultSchedule()
	valid := CommitRequest{
		Date:        "2024-05-01",
		Time:        "10:00 AM",
		ServiceType: "Dental",
		ServiceName: " Checkup ",
		Location:    "Smile Dental Clinic",
	}

	ap, err := valid.Build(schedule)
	require.NoError(t, err)
	assert.Equal(t, mustDate(t, "2024-05-01"), ap.Date)
	assert.Equal(t, ServiceDental, ap.ServiceType)
	assert.Equal(t, "Checkup", ap.ServiceName)
	assert.Empty(t, ap.ID)

	tests := []struct {
		name   string
		mutate func(r *CommitRequest)
		code   string
	}{
		{"missing date", func(r *CommitRequest) { r.Date = "" }, CodeMissingDate},
		{"malformed date", func(r *CommitRequest) { r.Date = "05/01/2024" }, CodeInvalidDate},
		{"impossible date", func(r *CommitRequest) { r.Date = "2023-02-29" }, CodeInvalidDate},
		{"missing time", func(r *CommitRequest) { r.Time = "  " }, CodeMissingTime},
		{"time outside template", func(r *CommitRequest) { r.Time = "10:30 AM" }, CodeUnknownTimeSlot},
		{"missing service type", func(r *CommitRequest) { r.ServiceType = "" }, CodeMissingServiceType},
		{"unknown service type", func(r *CommitRequest) { r.ServiceType = "yoga" }, CodeUnknownServiceType},
		{"sentinel is not a service type", func(r *CommitRequest) { r.ServiceType = "all" }, CodeUnknownServiceType},
		{"missing service name", func(r *CommitRequest) { r.ServiceName = "\t" }, CodeMissingServiceName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := req.Build(schedule)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
			assert.True(t, httperr.IsBusiness(err, tt.code), err.Error())
		})
	}
}

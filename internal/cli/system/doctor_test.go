package system

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Adel13Lis/infs3208-routegate/internal/cli/clitest"
)

const airportsJSON = `[{"code":"BNE","name":"Brisbane Airport"},{"code":"SYD","name":"Sydney Airport"}]`

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, out := clitest.NewContext(t, clitest.JSON(http.StatusOK, airportsJSON))
	clitest.Login(t, ctx)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy setup: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All diagnostics passed!") {
		t.Errorf("output = %s", out.String())
	}
}

func TestDoctorCmd_LoggedOutIsWarning(t *testing.T) {
	ctx, out := clitest.NewContext(t, clitest.JSON(http.StatusOK, airportsJSON))

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command should not fail when logged out: %v", err)
	}
	if !strings.Contains(out.String(), "⚠ Session: WARNING") {
		t.Errorf("missing session warning:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "⊘ Home airport: SKIPPED") {
		t.Errorf("home airport check should be skipped:\n%s", out.String())
	}
}

func TestDoctorCmd_APIDown(t *testing.T) {
	ctx, out := clitest.NewContext(t, clitest.JSON(http.StatusServiceUnavailable, `{"error":"maintenance"}`))
	clitest.Login(t, ctx)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail when the API is unreachable")
	}
	if !strings.Contains(out.String(), "maintenance") {
		t.Errorf("output should carry the API error:\n%s", out.String())
	}
}

func TestDoctorCmd_UnknownHomeAirport(t *testing.T) {
	ctx, out := clitest.NewContext(t, clitest.JSON(http.StatusOK, `[{"code":"SYD","name":"Sydney Airport"}]`))
	clitest.Login(t, ctx)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail when the home airport is unknown")
	}
	if !strings.Contains(out.String(), "home airport BNE is not known") {
		t.Errorf("output = %s", out.String())
	}
}

func TestCheckClock(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"current", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), false},
		{"epoch", time.Unix(0, 0), true},
		{"far future", time.Date(2150, 1, 1, 0, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkClock(tt.now); (err != nil) != tt.wantErr {
				t.Errorf("checkClock() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

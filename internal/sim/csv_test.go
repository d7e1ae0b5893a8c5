package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"solar-viability/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTraceCSV(t *testing.T) {
	pv := DefaultPVModel().HourlyProfile(9000)
	load := model.LoadProfile{DailyConsumptionKWh: 40, Hourly: model.UniformHourly(40)}
	trace, err := SimulateDay(pv, load, testBESS())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, WriteTraceCSV(path, trace))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 25) // header + 24 hours

	assert.Equal(t, []string{
		"hour", "pv_kwh", "load_kwh", "net_kwh", "mode",
		"charged_kwh", "discharged_kwh", "soc_start", "soc_end",
	}, rows[0])

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "23", rows[24][0])
	// Overnight hour: no PV, battery covering the load.
	assert.Equal(t, "0.000000", rows[1][1])
	assert.Equal(t, string(model.ModeDischarging), rows[1][4])
}

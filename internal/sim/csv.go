package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteTraceCSV writes the hour-by-hour battery trace, the primary
// artifact for "what happened" during the representative day.
func WriteTraceCSV(path string, trace *DayTrace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"pv_kwh",
		"load_kwh",
		"net_kwh",
		"mode",
		"charged_kwh",
		"discharged_kwh",
		"soc_start",
		"soc_end",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, h := range trace.Hours {
		row := []string{
			strconv.Itoa(h.Hour),
			fmtFloat(h.PVKWh),
			fmtFloat(h.LoadKWh),
			fmtFloat(h.NetKWh),
			string(h.Mode),
			fmtFloat(h.ChargedKWh),
			fmtFloat(h.DischargedKWh),
			fmtFloat(h.SOCStart),
			fmtFloat(h.SOCEnd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las claves del reporte de pérdidas y ganancias son contrato con los
// clientes: summary, roiByCrop y timeframe con startDate/endDate.
func TestProfitLossReport_ClavesDelContrato(t *testing.T) {
	start := "2026-01-01"
	report := ProfitLossReportDTO{
		ROIByCrop: []CropROIDTO{},
		Timeframe: TimeframeDTO{StartDate: &start},
	}

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))

	assert.Contains(t, keys, "summary")
	assert.Contains(t, keys, "roiByCrop")
	assert.Contains(t, keys, "timeframe")
	assert.NotContains(t, keys, "roi_by_crop")

	var tf map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(keys["timeframe"], &tf))
	assert.Contains(t, tf, "startDate")
	assert.Contains(t, tf, "endDate")
}

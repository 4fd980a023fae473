package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *Run {
	return &Run{
		Variant: "D2: Horizontal",
		Effort:  200, Arm1: 3.0, Arm2: 1.5,
		Dt: 1.0 / 60.0, Duration: 2.0 / 60.0,
		Samples: []Sample{
			{Time: 1.0 / 60.0, Rotation: 0.5, AngularVelocity: 1.2, NetTorque: 150, MomentArm: 1.5, Result: 400},
			{Time: 2.0 / 60.0, Rotation: 1.1, AngularVelocity: 2.3, NetTorque: 148, MomentArm: 1.49, Result: 402},
		},
	}
}

func TestJSONRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleRun()))

	var got Run
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "D2: Horizontal", got.Variant)
	assert.Equal(t, 2, got.Steps)
	require.Len(t, got.Samples, 2)
	assert.Equal(t, 0.5, got.Samples[0].Rotation)
}

func TestCSVRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleRun()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"time", "rotation", "angular_velocity", "net_torque", "moment_arm", "result_force"}, rows[0])
	assert.Equal(t, "0.500000", rows[1][1])
	assert.Equal(t, "402.000000", rows[2][5])
}

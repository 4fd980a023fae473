// Package export writes headless lever runs as JSON or CSV. Output is
// one-shot to a writer; nothing is persisted between sessions.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// Sample is one recorded integration step of a single diagram.
type Sample struct {
	Time            float64 `json:"t"`
	Rotation        float64 `json:"rotation"`
	AngularVelocity float64 `json:"angular_velocity"`
	NetTorque       float64 `json:"net_torque"`
	MomentArm       float64 `json:"moment_arm"`
	Result          float64 `json:"result_force"`
}

// Run is a recorded headless simulation of one diagram.
type Run struct {
	Variant  string   `json:"variant"`
	Effort   float64  `json:"effort"`
	Arm1     float64  `json:"arm1"`
	Arm2     float64  `json:"arm2"`
	Dt       float64  `json:"dt"`
	Duration float64  `json:"duration"`
	Steps    int      `json:"steps"`
	Samples  []Sample `json:"samples"`
}

// JSON writes the run as indented JSON.
func JSON(w io.Writer, run *Run) error {
	run.Steps = len(run.Samples)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// CSV writes the run's samples as CSV with a header row.
func CSV(w io.Writer, run *Run) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time", "rotation", "angular_velocity", "net_torque", "moment_arm", "result_force"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range run.Samples {
		row := []string{
			fmtFloat(s.Time),
			fmtFloat(s.Rotation),
			fmtFloat(s.AngularVelocity),
			fmtFloat(s.NetTorque),
			fmtFloat(s.MomentArm),
			fmtFloat(s.Result),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

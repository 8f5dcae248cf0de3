package scenario

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/swarmgrid/swarm"
)

// WriteResult writes one scenario's outcome in the format:
//
//	Safe-to-Pivot: <true|false>
//	0 <positions in agent-id order, initial configuration>
//	1 <positions after pivot-visit>
//	2 <positions after destination-extension>
//
// When safe is false the 0/1/2 lines are omitted entirely — the
// instance was never executed.
func WriteResult(path string, safe bool, order []swarm.AgentID, milestones [3]swarm.Snapshot) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Safe-to-Pivot: %t\n", safe)
	if safe {
		for stage, snap := range milestones {
			fmt.Fprintf(&b, "%d %s\n", stage, formatPositions(order, snap))
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("scenario: writing result %s: %w", path, err)
	}
	return nil
}

func formatPositions(order []swarm.AgentID, snap swarm.Snapshot) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range order {
		if i > 0 {
			b.WriteString(", ")
		}
		c := snap[a]
		fmt.Fprintf(&b, "(%d, %d)", c.X, c.Y)
	}
	b.WriteByte(']')
	return b.String()
}

// AppendTimeLog appends one line to a semicolon-separated time log,
// writing the "scenario_file;execution_time_seconds" header first if the
// file doesn't yet exist. The decimal separator is a comma, matching
// the downstream locale the original harness targeted.
func AppendTimeLog(path string, scenarioFile string, seconds float64) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scenario: opening time log %s: %w", path, err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := f.WriteString("scenario_file;execution_time_seconds\n"); err != nil {
			return fmt.Errorf("scenario: writing time log header: %w", err)
		}
	}

	secStr := strings.Replace(strconv.FormatFloat(seconds, 'f', -1, 64), ".", ",", 1)
	if _, err := fmt.Fprintf(f, "%s;%s\n", scenarioFile, secStr); err != nil {
		return fmt.Errorf("scenario: appending time log line: %w", err)
	}
	return nil
}

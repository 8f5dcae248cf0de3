package scenario

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// ParseMap reads a map file of the form:
//
//	type octile
//	height <H>
//	width <W>
//	map
//	<H lines of W characters; '.' and 'G' are free, '@' and 'T' are obstacles>
//	pivot
//	<px> <py>
//
// The pivot block may appear before or after the map block.
func ParseMap(path string) (*grid.Grid, grid.Cell, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, grid.Cell{}, fmt.Errorf("%w: %s: %v", ErrMalformedMap, path, err)
	}
	lines := strings.Split(string(raw), "\n")

	var height, width int
	var mapIdx = -1
	var pivotIdx = -1
	for i, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(trimmed, "height"):
			height, err = scanIntField(trimmed)
			if err != nil {
				return nil, grid.Cell{}, fmt.Errorf("%w: bad height line %q", ErrMalformedMap, trimmed)
			}
		case strings.HasPrefix(trimmed, "width"):
			width, err = scanIntField(trimmed)
			if err != nil {
				return nil, grid.Cell{}, fmt.Errorf("%w: bad width line %q", ErrMalformedMap, trimmed)
			}
		case trimmed == "map":
			mapIdx = i
		case trimmed == "pivot":
			pivotIdx = i
		}
	}
	if height <= 0 || width <= 0 {
		return nil, grid.Cell{}, fmt.Errorf("%w: missing height/width", ErrMalformedMap)
	}
	if mapIdx == -1 {
		return nil, grid.Cell{}, fmt.Errorf("%w: missing map block", ErrMalformedMap)
	}
	if pivotIdx == -1 || pivotIdx+1 >= len(lines) {
		return nil, grid.Cell{}, fmt.Errorf("%w: missing pivot block", ErrMalformedMap)
	}

	var obstacles []grid.Cell
	for row := 0; row < height; row++ {
		li := mapIdx + 1 + row
		if li >= len(lines) {
			return nil, grid.Cell{}, fmt.Errorf("%w: map block has fewer than height=%d rows", ErrMalformedMap, height)
		}
		rowText := strings.TrimRight(lines[li], "\r")
		for col, ch := range rowText {
			if col >= width {
				break
			}
			if ch == '@' || ch == 'T' {
				obstacles = append(obstacles, grid.Cell{X: col, Y: row})
			}
		}
	}

	pivotFields := strings.Fields(strings.TrimRight(lines[pivotIdx+1], "\r"))
	if len(pivotFields) < 2 {
		return nil, grid.Cell{}, fmt.Errorf("%w: malformed pivot coordinates", ErrMalformedMap)
	}
	px, err1 := strconv.Atoi(pivotFields[0])
	py, err2 := strconv.Atoi(pivotFields[1])
	if err1 != nil || err2 != nil {
		return nil, grid.Cell{}, fmt.Errorf("%w: non-integer pivot coordinates", ErrMalformedMap)
	}

	g, err := grid.New(width, height, obstacles)
	if err != nil {
		return nil, grid.Cell{}, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}

	return g, grid.Cell{X: px, Y: py}, nil
}

func scanIntField(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("expected two fields, got %q", line)
	}
	return strconv.Atoi(fields[1])
}

// ParseScenario reads a scenario file naming a map (relative path on
// line 2), an "agent & start" section of "<agent_id> <x> <y>" lines,
// and a "destination" section of "<x> <y>" lines. The returned
// Scenario.Order lists agent IDs in ascending numeric order, which is
// the fixed, documented iteration order used throughout C3/C4.
func ParseScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedScenario, path, err)
	}
	var lines []string
	for _, l := range strings.Split(string(raw), "\n") {
		lines = append(lines, strings.TrimRight(l, "\r"))
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: missing map path line", ErrMalformedScenario)
	}
	mapPath := strings.TrimSpace(lines[1])
	if mapPath == "" {
		return nil, fmt.Errorf("%w: empty map path line", ErrMalformedScenario)
	}

	startsIdx := indexOf(lines, "agent & start")
	destIdx := indexOf(lines, "destination")
	if startsIdx == -1 || destIdx == -1 || destIdx < startsIdx {
		return nil, fmt.Errorf("%w: missing agent & start / destination sections", ErrMalformedScenario)
	}

	initial := make(map[swarm.AgentID]grid.Cell)
	for i := startsIdx + 1; i < destIdx; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: malformed agent line %q", ErrMalformedScenario, lines[i])
		}
		id, err1 := strconv.Atoi(fields[0])
		x, err2 := strconv.Atoi(fields[1])
		y, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: non-integer agent line %q", ErrMalformedScenario, lines[i])
		}
		initial[swarm.AgentID(id)] = grid.Cell{X: x, Y: y}
	}

	var destinations []grid.Cell
	for i := destIdx + 1; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: malformed destination line %q", ErrMalformedScenario, lines[i])
		}
		x, err1 := strconv.Atoi(fields[0])
		y, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: non-integer destination line %q", ErrMalformedScenario, lines[i])
		}
		destinations = append(destinations, grid.Cell{X: x, Y: y})
	}

	order := make([]swarm.AgentID, 0, len(initial))
	for id := range initial {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return &Scenario{
		MapPath:      mapPath,
		Order:        order,
		Initial:      initial,
		Destinations: destinations,
	}, nil
}

func indexOf(lines []string, target string) int {
	for i, l := range lines {
		if strings.TrimSpace(l) == target {
			return i
		}
	}
	return -1
}

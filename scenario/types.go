package scenario

import (
	"errors"

	"github.com/katalvlaran/swarmgrid/grid"
	"github.com/katalvlaran/swarmgrid/swarm"
)

// Sentinel errors for malformed input files.
var (
	// ErrMalformedMap indicates a .map file is missing a required field or block.
	ErrMalformedMap = errors.New("scenario: malformed map file")

	// ErrMalformedScenario indicates a scenario .txt file is missing a required section.
	ErrMalformedScenario = errors.New("scenario: malformed scenario file")
)

// Scenario is one fully parsed scenario: the map it references (by
// relative path, resolved by the caller), the fixed agent order and
// their starting cells, and the destination set.
type Scenario struct {
	MapPath      string
	Order        []swarm.AgentID
	Initial      map[swarm.AgentID]grid.Cell
	Destinations []grid.Cell
}

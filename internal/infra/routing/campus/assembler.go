package campus

import (
	"fmt"
	"maps"

	"campusnav/internal/domain/entity"
	"campusnav/internal/infra/routing/geo"

	"github.com/paulmach/orb"
)

// DefaultStitchThresholdMeters is the distance from which an off-node endpoint gets its own leg
const DefaultStitchThresholdMeters = 10.0

// stitchEpsilon absorbs floating-point error at the stitch boundary
const stitchEpsilon = 1e-6 // meters

// SpeedTable maps a travel mode to a constant speed in m/s
type SpeedTable map[entity.TravelMode]float64

// DefaultSpeeds returns the reference speeds: walk 1.4 m/s, bike 4.2 m/s
func DefaultSpeeds() SpeedTable {
	return SpeedTable{
		entity.TravelModeWalk: 1.4,
		entity.TravelModeBike: 4.2,
	}
}

// Speed returns the speed for mode. Unknown or non-positive entries fall back to walking.
func (s SpeedTable) Speed(mode entity.TravelMode) float64 {
	if speed, ok := s[mode]; ok && speed > 0 {
		return speed
	}
	if speed, ok := s[entity.TravelModeWalk]; ok && speed > 0 {
		return speed
	}

	return DefaultSpeeds()[entity.TravelModeWalk]
}

// Assembler turns node paths into routable results
type Assembler struct {
	speeds          SpeedTable
	stitchThreshold float64
}

// NewAssembler creates an assembler. Nil speeds or a non-positive threshold use the defaults.
func NewAssembler(speeds SpeedTable, stitchThresholdMeters float64) *Assembler {
	if speeds == nil {
		speeds = DefaultSpeeds()
	} else {
		speeds = maps.Clone(speeds)
	}
	if stitchThresholdMeters <= 0 {
		stitchThresholdMeters = DefaultStitchThresholdMeters
	}

	return &Assembler{speeds: speeds, stitchThreshold: stitchThresholdMeters}
}

// StitchThreshold returns the stitching distance in meters
func (a *Assembler) StitchThreshold() float64 {
	return a.stitchThreshold
}

// Speeds returns a copy of the speed table used for durations
func (a *Assembler) Speeds() SpeedTable {
	return maps.Clone(a.speeds)
}

func (a *Assembler) needsStitch(dist float64) bool {
	return dist >= a.stitchThreshold-stitchEpsilon
}

// Assemble builds a campus route along path. origin and destination are the
// raw request coordinates; they get their own legs when they lie at least the
// stitch threshold away from the first and last path nodes.
// Step distances are recomputed from geometry, not taken from stored edges.
func (a *Assembler) Assemble(path []entity.Node, origin, destination orb.Point, mode entity.TravelMode) *entity.RouteResult {
	if len(path) == 0 {
		return nil
	}

	speed := a.speeds.Speed(mode)
	first, last := path[0], path[len(path)-1]

	originGap := geo.DistanceMeters(origin, first.Coordinates)
	destinationGap := geo.DistanceMeters(last.Coordinates, destination)
	stitchOrigin := a.needsStitch(originGap)
	stitchDestination := a.needsStitch(destinationGap)

	result := &entity.RouteResult{
		Path:        append([]entity.Node(nil), path...),
		Coordinates: make([]orb.Point, 0, len(path)+2),
		Steps:       make([]entity.RouteStep, 0, len(path)+1),
		Source:      entity.RouteSourceCampus,
		Mode:        mode,
	}

	if stitchOrigin {
		result.Coordinates = append(result.Coordinates, origin)
		result.Steps = append(result.Steps, a.step(
			fmt.Sprintf("Head to %s", first.Name), originGap, speed, entity.StepOriginID, first.ID))
	}

	for _, node := range path {
		result.Coordinates = append(result.Coordinates, node.Coordinates)
	}
	result.Steps = append(result.Steps, a.nodeSteps(path, speed, stitchDestination)...)

	if stitchDestination {
		result.Coordinates = append(result.Coordinates, destination)
		result.Steps = append(result.Steps, a.step(
			"Continue to your destination", destinationGap, speed, last.ID, entity.StepDestinationID))
	}

	a.totals(result)

	return result
}

// PrependLeg adds a straight leg from the point from to the start of result,
// using instruction as its text. Nothing is added when from is closer than the
// stitch threshold. It reports whether a leg was added.
func (a *Assembler) PrependLeg(result *entity.RouteResult, from orb.Point, instruction string) bool {
	if result == nil || len(result.Coordinates) == 0 {
		return false
	}

	gap := geo.DistanceMeters(from, result.Coordinates[0])
	if !a.needsStitch(gap) {
		return false
	}

	toID := entity.StepDestinationID
	if len(result.Steps) > 0 {
		toID = result.Steps[0].FromID
	} else if len(result.Path) > 0 {
		toID = result.Path[0].ID
	}

	leg := a.step(instruction, gap, a.speeds.Speed(result.Mode), entity.StepOriginID, toID)
	result.Coordinates = append([]orb.Point{from}, result.Coordinates...)
	result.Steps = append([]entity.RouteStep{leg}, result.Steps...)
	a.totals(result)

	return true
}

// nodeSteps builds one step per edge of path. A single-node path yields a
// zero-length arrival step unless the route continues to an off-node destination.
func (a *Assembler) nodeSteps(path []entity.Node, speed float64, continues bool) []entity.RouteStep {
	if len(path) == 1 {
		if continues {
			return nil
		}

		return []entity.RouteStep{a.step(fmt.Sprintf("Arrive at %s", path[0].Name), 0, speed, path[0].ID, path[0].ID)}
	}

	lastIdx := len(path) - 1
	steps := make([]entity.RouteStep, 0, lastIdx)
	for i := 1; i <= lastIdx; i++ {
		from, to := path[i-1], path[i]
		dist := geo.DistanceMeters(from.Coordinates, to.Coordinates)
		instruction := edgeInstruction(from, to, i == 1, i == lastIdx && !continues)
		steps = append(steps, a.step(instruction, dist, speed, from.ID, to.ID))
	}

	return steps
}

func (a *Assembler) step(instruction string, dist, speed float64, fromID, toID string) entity.RouteStep {
	return entity.RouteStep{
		Instruction: instruction,
		Distance:    dist,
		Duration:    dist / speed,
		FromID:      fromID,
		ToID:        toID,
	}
}

// totals recomputes route distance and duration from the steps
func (a *Assembler) totals(result *entity.RouteResult) {
	var total float64
	for _, step := range result.Steps {
		total += step.Distance
	}
	result.Distance = total
	result.Duration = total / a.speeds.Speed(result.Mode)
}

func edgeInstruction(from, to entity.Node, isFirst, isLast bool) string {
	direction := geo.Compass(from.Coordinates, to.Coordinates)

	switch {
	case isFirst && isLast:
		return fmt.Sprintf("Start at %s heading %s and arrive at %s", from.Name, direction, to.Name)
	case isFirst:
		return fmt.Sprintf("Start at %s heading %s toward %s", from.Name, direction, to.Name)
	case isLast:
		return fmt.Sprintf("Arrive at %s", to.Name)
	default:
		return fmt.Sprintf("Continue %s %s %s", direction, kindPreposition(to.Kind), to.Name)
	}
}

// kindPreposition picks how an intermediate node is referenced
func kindPreposition(kind entity.NodeKind) string {
	switch kind {
	case entity.NodeKindBuilding:
		return "toward"
	case entity.NodeKindIntersection:
		return "at"
	default:
		return "past"
	}
}

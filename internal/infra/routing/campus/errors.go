package campus

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidGraph is the root of all graph data-integrity failures
var ErrInvalidGraph = errors.New("invalid campus graph")

// Graph defect kinds reported by GraphError
const (
	DefectMissingID         = "missing_id"
	DefectDuplicateID       = "duplicate_id"
	DefectDanglingEdge      = "dangling_edge"
	DefectSelfLoop          = "self_loop"
	DefectInvalidDistance   = "invalid_distance"
	DefectInvalidKind       = "invalid_kind"
	DefectInvalidCoordinate = "invalid_coordinate"
	DefectEmpty             = "empty"
)

// GraphError describes one data-integrity defect found while building a graph.
// It matches ErrInvalidGraph with errors.Is.
type GraphError struct {
	Kind string
	Msg  string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidGraph.Error(), e.Kind)
	}

	return fmt.Sprintf("%s: %s", ErrInvalidGraph.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return ErrInvalidGraph }

package services

import "github.com/go-faster/errors"

var ErrNavigatorNotInitialized = errors.New("drill-down navigator not initialized")

// DrillDownNavigator holds the ordered list of levels the user has drilled
// through. It is not safe for concurrent use; callers gate transitions on
// their own loading state.
type DrillDownNavigator struct {
	path []LevelResult
}

func NewDrillDownNavigator() *DrillDownNavigator {
	return &DrillDownNavigator{}
}

// Init resets the path to the organization root. Until Init is called every
// transition fails.
func (n *DrillDownNavigator) Init(org LevelResult) {
	n.path = []LevelResult{org}
}

func (n *DrillDownNavigator) Initialized() bool {
	return len(n.path) > 0
}

// DrillDown appends the level to the path. The level's numeric Level field is
// informational only and never validated against the path.
func (n *DrillDownNavigator) DrillDown(level LevelResult) error {
	if !n.Initialized() {
		return ErrNavigatorNotInitialized
	}
	n.path = append(n.path, level)
	return nil
}

// BreadcrumbClick truncates the path back to (and including) the target
// index. Out-of-range indices are clamped to the valid range.
func (n *DrillDownNavigator) BreadcrumbClick(targetIndex int) error {
	if !n.Initialized() {
		return ErrNavigatorNotInitialized
	}
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex >= len(n.path) {
		targetIndex = len(n.path) - 1
	}
	n.path = n.path[:targetIndex+1]
	return nil
}

func (n *DrillDownNavigator) CurrentLevel() (LevelResult, error) {
	if !n.Initialized() {
		return LevelResult{}, ErrNavigatorNotInitialized
	}
	return n.path[len(n.path)-1], nil
}

// Path returns a copy of the breadcrumb trail.
func (n *DrillDownNavigator) Path() []LevelResult {
	out := make([]LevelResult, len(n.path))
	copy(out, n.path)
	return out
}

func (n *DrillDownNavigator) Depth() int {
	return len(n.path)
}

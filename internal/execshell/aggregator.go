package execshell

import (
	"strings"
	"sync"
)

const lineTerminatorConstant = "\n"

// OutputAggregator accumulates lines delivered by concurrent producers into one buffer.
//
// Every AppendLine holds the mutex for the whole write, so lines are never split or
// fused. Lines from one producer keep their order. Lines from different producers are
// ordered by whichever call acquires the mutex first: a stdout line and a stderr line
// emitted at nearly the same moment may land in either order.
type OutputAggregator struct {
	mutex     sync.Mutex
	buffer    strings.Builder
	lineCount int
}

// NewOutputAggregator constructs an empty aggregator scoped to one invocation.
func NewOutputAggregator() *OutputAggregator {
	return &OutputAggregator{}
}

// AppendLine writes text followed by a line terminator.
func (aggregator *OutputAggregator) AppendLine(text string) {
	aggregator.mutex.Lock()
	defer aggregator.mutex.Unlock()

	aggregator.buffer.WriteString(text)
	aggregator.buffer.WriteString(lineTerminatorConstant)
	aggregator.lineCount++
}

// String returns the accumulated text.
func (aggregator *OutputAggregator) String() string {
	aggregator.mutex.Lock()
	defer aggregator.mutex.Unlock()

	return aggregator.buffer.String()
}

// LineCount reports how many lines were appended.
func (aggregator *OutputAggregator) LineCount() int {
	aggregator.mutex.Lock()
	defer aggregator.mutex.Unlock()

	return aggregator.lineCount
}

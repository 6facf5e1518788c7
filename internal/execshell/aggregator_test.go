package execshell_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/shellrun/internal/execshell"
)

func TestOutputAggregatorAppendsTerminatedLines(testInstance *testing.T) {
	aggregator := execshell.NewOutputAggregator()
	aggregator.AppendLine("first")
	aggregator.AppendLine("")
	aggregator.AppendLine("third")

	require.Equal(testInstance, "first\n\nthird\n", aggregator.String())
	require.Equal(testInstance, 3, aggregator.LineCount())
}

func TestOutputAggregatorConcurrentProducersKeepLinesIntact(testInstance *testing.T) {
	const (
		producerCount     = 8
		linesPerProducer  = 500
		lineTemplate      = "producer-%d-line-%d-%s"
		linePaddingLength = 64
	)

	for attempt := 0; attempt < 5; attempt++ {
		aggregator := execshell.NewOutputAggregator()
		padding := strings.Repeat("x", linePaddingLength)

		var producers sync.WaitGroup
		for producerIndex := 0; producerIndex < producerCount; producerIndex++ {
			producers.Add(1)
			go func(producerIndex int) {
				defer producers.Done()
				for lineIndex := 0; lineIndex < linesPerProducer; lineIndex++ {
					aggregator.AppendLine(fmt.Sprintf(lineTemplate, producerIndex, lineIndex, padding))
				}
			}(producerIndex)
		}
		producers.Wait()

		collectedLines := strings.Split(strings.TrimSuffix(aggregator.String(), "\n"), "\n")
		require.Len(testInstance, collectedLines, producerCount*linesPerProducer)
		require.Equal(testInstance, producerCount*linesPerProducer, aggregator.LineCount())

		nextLineIndex := make(map[int]int, producerCount)
		for _, collectedLine := range collectedLines {
			var producerIndex, lineIndex int
			var trailer string
			scanned, scanError := fmt.Sscanf(strings.ReplaceAll(collectedLine, "-", " "), "producer %d line %d %s", &producerIndex, &lineIndex, &trailer)
			require.NoError(testInstance, scanError, collectedLine)
			require.Equal(testInstance, 3, scanned)
			require.Equal(testInstance, padding, trailer)
			require.Equal(testInstance, nextLineIndex[producerIndex], lineIndex, "lines from one producer must keep their order")
			nextLineIndex[producerIndex] = lineIndex + 1
		}
	}
}

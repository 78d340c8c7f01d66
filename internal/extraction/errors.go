package extraction

import "fmt"

// PartitionError indicates the layout-aware partitioner failed on a document.
type PartitionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *PartitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("partition failed for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("partition failed for %s: %s", e.Filename, e.Message)
}

func (e *PartitionError) Unwrap() error {
	return e.Cause
}

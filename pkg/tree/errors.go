package tree

// InvalidArgumentError reports input that does not match the expected shape
// of a fitted classifier. It is never recovered from; callers receive it
// directly.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "tree: " + e.Reason
}

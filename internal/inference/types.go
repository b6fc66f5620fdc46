package inference

// Answer is the result of an extractive QA call.
type Answer struct {
	Text  string
	Score float64
	Model string
}

// Summary is the result of a summarization call.
type Summary struct {
	Text  string
	Model string
}

package search

// ResultType identifies the kind of entity in a search result.
type ResultType string

const (
	ResultContract ResultType = "contract"
	ResultTemplate ResultType = "template"
	ResultSection  ResultType = "section"
)

// Result is a single search hit returned to the caller.
type Result struct {
	Type    ResultType `json:"type"`
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Snippet string     `json:"snippet"`
}

// Query describes a search request.
type Query struct {
	Text       string
	FilterType ResultType // empty = all types
	Limit      int
	Offset     int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute a full-text search.
type Searcher interface {
	Search(q Query) ([]Result, int, error)
	Healthy() bool
}

// ContractRecord is the data we index for a contract or template.
type ContractRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
}

// SectionRecord is the data we index for a catalog section.
type SectionRecord struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

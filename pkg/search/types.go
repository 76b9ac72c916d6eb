package search

// Request is a normalized web search request. The query is expected to
// already carry any site restriction.
type Request struct {
	Query string
	Limit int
}

// Result is one ranked search hit reduced to what the pipeline needs.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Response is a normalized search response.
type Response struct {
	Query    string   `json:"query"`
	Provider string   `json:"provider"`
	Results  []Result `json:"results"`
	TookMs   int64    `json:"took_ms"`
}

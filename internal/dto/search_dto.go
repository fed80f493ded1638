package dto

type SearchResponse struct {
	Items []ArticleListItem `json:"items"`
	Query string            `json:"query"`
	Total int               `json:"total"`
}

type AutocompleteItem struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

package handler

type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	SourceIcon  string `json:"source_icon"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"published_at"`
	FetchedAt   string `json:"fetched_at"`
}

type ArticlesResponse struct {
	Date     string            `json:"date"`
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
	Limit    int               `json:"limit"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

type BriefingResponse struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	BulletPoints []string `json:"bullet_points"`
	Sentiment    string   `json:"sentiment"`
	ModelUsed    string   `json:"model_used"`
	GeneratedAt  string   `json:"generated_at"`
}

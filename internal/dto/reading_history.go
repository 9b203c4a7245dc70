package dto

// ReadingHistoryItem 阅读历史条目
type ReadingHistoryItem struct {
	ID           uint   `json:"id"`
	ArticleID    uint   `json:"article_id"`
	ArticleTitle string `json:"article_title"`
	AuthorID     uint   `json:"author_id"`
	AuthorName   string `json:"author_name"`
	ReadAt       string `json:"read_at"`
}

// ReadingHistoryListResponse 阅读历史列表响应
type ReadingHistoryListResponse struct {
	Total int64                `json:"total"`
	List  []ReadingHistoryItem `json:"list"`
}

package models

// Priority 推荐优先级
type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// NormalizePriority 模型返回的未知优先级统一归为optional
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityEssential, PriorityRecommended, PriorityOptional:
		return p
	default:
		return PriorityOptional
	}
}

// Candidate 生成模型返回的单个商品，尚未分配id和媒体信息
type Candidate struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Reason      string   `json:"reason"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
}

// RecommendedItem 返回给前端的推荐商品
type RecommendedItem struct {
	ID          string   `json:"id" example:"bousai-1718000000000-0"`
	Name        string   `json:"name" example:"パナソニック 手回し充電ラジオ RF-TJ20"`
	Price       int64    `json:"price" example:"3000"`
	Description string   `json:"description"`
	Reason      string   `json:"reason"`
	Priority    Priority `json:"priority" example:"essential"`
	Category    string   `json:"category" example:"通信"`
	ImageURL    string   `json:"imageUrl"`
	VideoIDs    []string `json:"videoIds,omitempty"` // 没有视频时省略，不输出空数组
}

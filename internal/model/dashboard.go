package model

// StatCard 仪表盘统计卡片
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

// DayLoad 周负载
type DayLoad struct {
	Day    string `json:"day"`
	Load   int    `json:"load"`
	Target int    `json:"target"`
}

// FeedItem 动态消息
type FeedItem struct {
	ID   string `json:"id"`
	Type string `json:"type"` // success | warning | info
	Text string `json:"text"`
	Time string `json:"time"`
}

// UpcomingShift 即将开始的班次
type UpcomingShift struct {
	Employee string `json:"employee"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Dashboard 仪表盘聚合数据
type Dashboard struct {
	Stats      []StatCard      `json:"stats"`
	WeeklyLoad []DayLoad       `json:"weekly_load"`
	Feed       []FeedItem      `json:"feed"`
	Upcoming   []UpcomingShift `json:"upcoming_shifts"`
}

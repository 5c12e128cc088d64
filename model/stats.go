package model

// TaskStats is the per-user snapshot returned by the stats endpoint. The bson
// tags match the field names produced by the aggregation $group stage, the
// json tags the wire format consumed by the frontend.
type TaskStats struct {
	TotalTasks     int     `bson:"totalTasks" json:"totalTasks"`
	Completed      int     `bson:"completed" json:"completed"`
	InProgress     int     `bson:"inProgress" json:"inProgress"`
	Todo           int     `bson:"todo" json:"todo"`
	HighPriority   int     `bson:"highPriority" json:"highPriority"`
	MediumPriority int     `bson:"mediumPriority" json:"mediumPriority"`
	LowPriority    int     `bson:"lowPriority" json:"lowPriority"`
	CompletionRate float64 `bson:"-" json:"completionRate"`
}

// DayCount is one row of the completions-by-day aggregation. The _id carries
// the YYYY-MM-DD bucket produced by $dateToString.
type DayCount struct {
	Date  string `bson:"_id"`
	Count int    `bson:"count"`
}

// DailyCompletion is one gap-filled entry of a productivity report.
type DailyCompletion struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

type ProductivityReport struct {
	Period                   string            `json:"period"`
	TotalCompleted           int               `json:"totalCompleted"`
	AverageCompletionsPerDay float64           `json:"averageCompletionsPerDay"`
	DailyData                []DailyCompletion `json:"dailyData"`
}

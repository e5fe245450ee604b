package model

// Statistics is the dashboard summary over all student records.
// The nested count/avg objects keep the shape the dashboard already reads.
type Statistics struct {
	TotalStudents    CountStat   `json:"totalStudents"`
	ActiveStudents   CountStat   `json:"activeStudents"`
	InactiveStudents CountStat   `json:"inactiveStudents"`
	AverageGPA       AverageStat `json:"averageGPA"`
}

type CountStat struct {
	Count int64 `json:"count"`
}

type AverageStat struct {
	Avg float64 `json:"avg"`
}

package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DataServiceURL     string
	DataServiceTimeout time.Duration

	JobQueueCapacity int
	JobWorkerCount   int

	MinDaysOffPerWeek       int
	MaxDaysOffPerWeek       int
	MaxDailyShiftDifference int
}

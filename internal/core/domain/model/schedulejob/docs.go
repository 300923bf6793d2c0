// Package schedulejob contains the schedule job aggregate and its
// supporting value objects.
//
// A ScheduleJob tracks one asynchronous request to build a 28-day shift
// schedule for a staff group. The aggregate enforces the job state
// machine (Pending -> Processing -> Completed/Failed), while Assignment
// values capture the produced schedule as one shift per staff member per
// calendar day.
package schedulejob

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJob struct {
	name     string
	runs     int
	err      error
	schedule Schedule
}

func (j *recordingJob) Name() string                      { return j.name }
func (j *recordingJob) Schedule() Schedule                { return j.schedule }
func (j *recordingJob) Execute(ctx context.Context) error { j.runs++; return j.err }

func TestTriggerJobByNameWithoutStart(t *testing.T) {
	scheduler := NewSchedulerService()
	job := &recordingJob{name: "NightlySweep", schedule: Daily}

	require.NoError(t, scheduler.AddJob(job))
	require.False(t, scheduler.IsRunning())

	require.NoError(t, scheduler.TriggerJobByName(context.Background(), "NightlySweep"))
	assert.Equal(t, 1, job.runs)
}

func TestTriggerJobByNameUnknown(t *testing.T) {
	scheduler := NewSchedulerService()

	err := scheduler.TriggerJobByName(context.Background(), "NoSuchJob")
	assert.Error(t, err)
}

func TestTriggerJobByNamePropagatesFailure(t *testing.T) {
	scheduler := NewSchedulerService()
	job := &recordingJob{name: "FailingJob", schedule: Hourly, err: errors.New("boom")}

	require.NoError(t, scheduler.AddJob(job))

	err := scheduler.TriggerJobByName(context.Background(), "FailingJob")
	assert.Error(t, err)
	assert.Equal(t, 1, job.runs)
}

func TestSchedulerJobCount(t *testing.T) {
	scheduler := NewSchedulerService()
	assert.Equal(t, 0, scheduler.GetJobCount())

	require.NoError(t, scheduler.AddJob(&recordingJob{name: "A", schedule: Hourly}))
	require.NoError(t, scheduler.AddJob(&recordingJob{name: "B", schedule: Daily}))
	assert.Equal(t, 2, scheduler.GetJobCount())
}

package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"smartjob-backend/models"
)

func validJob() JobData {
	return JobData{
		Title:           "Frontend Developer",
		Description:     "Build the dashboard",
		Qualification:   "React",
		SalaryMin:       40000,
		SalaryMax:       60000,
		JobType:         models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceJunior,
		Location:        "Remote",
		Skills:          []string{"React"},
	}
}

func TestJobModels(t *testing.T) {
	t.Run(`job data validation`, func(t *testing.T) {
		require.Nil(t, validJob().Validate())

		job := validJob()
		job.Title = " "
		require.EqualError(t, job.Validate(), "Job title is required")

		job = validJob()
		job.SalaryMin = 70000
		require.EqualError(t, job.Validate(), "Minimum salary can not exceed maximum salary")

		job = validJob()
		job.JobType = "Gig"
		require.NotNil(t, job.Validate())
	})

	t.Run(`patch apply changes only set fields`, func(t *testing.T) {
		view := JobView{ID: "1", JobData: validJob()}
		title := "Senior Frontend Developer"
		skills := []string{"React", " TypeScript", "React"}
		patched := JobPatch{Title: &title, Skills: &skills}.Apply(view)
		require.Equal(t, "1", patched.ID)
		require.Equal(t, title, patched.Title)
		require.Equal(t, []string{"React", "TypeScript"}, patched.Skills)
		require.Equal(t, view.Description, patched.Description)
		require.Equal(t, view.SalaryMax, patched.SalaryMax)
		require.Equal(t, "Frontend Developer", view.Title)
	})

	t.Run(`patch validation`, func(t *testing.T) {
		require.True(t, JobPatch{}.IsEmpty())
		negative := -1
		require.NotNil(t, JobPatch{SalaryMin: &negative}.Validate())
		empty := ""
		require.EqualError(t, JobPatch{Location: &empty}.Validate(), "Location is required")
		min, max := 10, 5
		require.NotNil(t, JobPatch{SalaryMin: &min, SalaryMax: &max}.Validate())
	})
}

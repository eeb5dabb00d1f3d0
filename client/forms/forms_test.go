package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
	"smartjob-backend/client/api"
	"smartjob-backend/models"
	jobapimodels "smartjob-backend/models/api/job"
	userapimodels "smartjob-backend/models/api/user"
)

func validJob() jobapimodels.JobData {
	return jobapimodels.JobData{
		Title:           "Go Developer",
		Description:     "Build APIs",
		Qualification:   "3 years of Go",
		SalaryMin:       50000,
		SalaryMax:       80000,
		JobType:         models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceSenior,
		Location:        "Remote",
		Skills:          []string{"Go"},
	}
}

func TestJobForm(t *testing.T) {
	t.Run(`skill input`, func(t *testing.T) {
		form := NewJobForm()
		require.False(t, form.HandleSkillKey("a", "Go"))
		require.False(t, form.HandleSkillKey(SkillConfirmKey, "   "))
		require.Empty(t, form.Skills)

		require.True(t, form.HandleSkillKey(SkillConfirmKey, " Go "))
		require.True(t, form.HandleSkillKey(SkillConfirmKey, "SQL"))
		require.True(t, form.HandleSkillKey(SkillConfirmKey, "Go"))
		require.True(t, form.HandleSkillKey(SkillConfirmKey, "Docker"))
		require.Equal(t, []string{"Go", "SQL", "Docker"}, form.Skills)

		form.RemoveSkill("SQL")
		form.RemoveSkill("Kotlin")
		require.Equal(t, []string{"Go", "Docker"}, form.Skills)
	})

	t.Run(`validation`, func(t *testing.T) {
		form := NewJobForm()
		require.EqualError(t, form.Validate(), "Job title is required")
		_, err := form.ToCreate()
		require.NotNil(t, err)

		form.JobData = validJob()
		form.SalaryMin = 90000
		require.EqualError(t, form.Validate(), "Minimum salary can not exceed maximum salary")
	})

	t.Run(`create payload`, func(t *testing.T) {
		form := NewJobForm()
		form.JobData = validJob()
		form.Title = "  Go Developer "
		data, err := form.ToCreate()
		require.Nil(t, err)
		require.Equal(t, "Go Developer", data.Title)
		require.False(t, form.IsEdit())

		patch, err := form.ToPatch()
		require.Nil(t, err)
		require.NotNil(t, patch.Title)
		require.NotNil(t, patch.Skills)
	})

	t.Run(`edit patch holds changed fields only`, func(t *testing.T) {
		job := jobapimodels.JobView{ID: "job-1", JobData: validJob()}
		form := EditJobForm(job)
		require.True(t, form.IsEdit())

		patch, err := form.ToPatch()
		require.Nil(t, err)
		require.True(t, patch.IsEmpty())

		form.Location = "Berlin"
		form.HandleSkillKey(SkillConfirmKey, "Kubernetes")
		patch, err = form.ToPatch()
		require.Nil(t, err)
		require.Nil(t, patch.Title)
		require.Nil(t, patch.SalaryMin)
		require.Equal(t, "Berlin", *patch.Location)
		require.Equal(t, []string{"Go", "Kubernetes"}, *patch.Skills)
		require.Equal(t, []string{"Go"}, job.Skills)

		updated := patch.Apply(job)
		require.Equal(t, "Berlin", updated.Location)
		require.Equal(t, job.Title, updated.Title)
	})
}

func TestProfileForm(t *testing.T) {
	user := userapimodels.UserView{ID: "user-1", Name: "Test", CompanyName: "Acme", Location: "Pune"}
	form := NewProfileForm(user)
	require.False(t, form.Editing())

	form.Edit()
	require.True(t, form.Editing())
	form.Name = "Test User"
	form.Photo = &api.File{FileName: "me.png"}
	require.True(t, form.HasChanges())

	patch := form.Patch()
	require.Equal(t, "Test User", *patch.Name)
	require.Nil(t, patch.CompanyName)
	require.Nil(t, patch.Location)

	form.Cancel()
	require.False(t, form.Editing())
	require.Equal(t, "Test", form.Name)
	require.Nil(t, form.Photo)
	require.False(t, form.HasChanges())

	form.Edit()
	form.Location = "Delhi"
	user.Location = "Delhi"
	form.Saved(user)
	require.False(t, form.Editing())
	require.True(t, form.Patch().IsEmpty())
}

// Package forms holds the input state of the job posting and profile pages.
package forms

import (
	"strings"

	"smartjob-backend/lib/utils/skills"
	jobapimodels "smartjob-backend/models/api/job"
)

// SkillConfirmKey adds the typed skill to the list.
const SkillConfirmKey = "Enter"

type JobForm struct {
	jobapimodels.JobData

	original *jobapimodels.JobView
}

func NewJobForm() *JobForm {
	return &JobForm{
		JobData: jobapimodels.JobData{Skills: []string{}},
	}
}

// EditJobForm starts from an existing job; ToPatch reports the fields changed since.
func EditJobForm(job jobapimodels.JobView) *JobForm {
	data := job.JobData
	data.Skills = append([]string{}, job.Skills...)
	return &JobForm{
		JobData:  data,
		original: &job,
	}
}

func (f *JobForm) IsEdit() bool {
	return f.original != nil
}

// HandleSkillKey adds the trimmed input when key confirms a non-empty value. The
// result tells whether the input box should be cleared.
func (f *JobForm) HandleSkillKey(key, input string) bool {
	if key != SkillConfirmKey || strings.TrimSpace(input) == "" {
		return false
	}
	f.Skills, _ = skills.Add(f.Skills, input)
	return true
}

func (f *JobForm) RemoveSkill(tag string) {
	f.Skills = skills.Remove(f.Skills, tag)
}

func (f *JobForm) Validate() error {
	return f.JobData.Validate()
}

func (f *JobForm) ToCreate() (jobapimodels.JobData, error) {
	if err := f.Validate(); err != nil {
		return jobapimodels.JobData{}, err
	}
	data := f.JobData
	data.Title = strings.TrimSpace(data.Title)
	data.Location = strings.TrimSpace(data.Location)
	data.Skills = skills.Normalize(data.Skills)
	return data, nil
}

// ToPatch lists the fields that differ from the job the form was opened with. A new
// job form patches every field.
func (f *JobForm) ToPatch() (jobapimodels.JobPatch, error) {
	data, err := f.ToCreate()
	if err != nil {
		return jobapimodels.JobPatch{}, err
	}
	base := jobapimodels.JobData{}
	full := f.original == nil
	if !full {
		base = f.original.JobData
	}
	patch := jobapimodels.JobPatch{}
	if full || data.Title != base.Title {
		patch.Title = &data.Title
	}
	if full || data.Description != base.Description {
		patch.Description = &data.Description
	}
	if full || data.Qualification != base.Qualification {
		patch.Qualification = &data.Qualification
	}
	if full || data.SalaryMin != base.SalaryMin {
		patch.SalaryMin = &data.SalaryMin
	}
	if full || data.SalaryMax != base.SalaryMax {
		patch.SalaryMax = &data.SalaryMax
	}
	if full || data.JobType != base.JobType {
		patch.JobType = &data.JobType
	}
	if full || data.ExperienceLevel != base.ExperienceLevel {
		patch.ExperienceLevel = &data.ExperienceLevel
	}
	if full || data.Location != base.Location {
		patch.Location = &data.Location
	}
	if full || !equalSkills(data.Skills, base.Skills) {
		patch.Skills = &data.Skills
	}
	return patch, nil
}

func equalSkills(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

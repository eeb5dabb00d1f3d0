package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"smartjob-backend/models"
	applicantapimodels "smartjob-backend/models/api/applicant"
)

func TestExportApplicantList(t *testing.T) {
	NewHandler()

	t.Run(`rows and styles`, func(t *testing.T) {
		list := []applicantapimodels.ApplicantView{
			{
				ID:            "a-1",
				ApplicantData: applicantapimodels.ApplicantData{Name: "Ann", Email: "ann@example.com", JobTitle: "Go Developer"},
				Status:        models.ApplicantStatusPending,
				CreatedAt:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:            "a-2",
				ApplicantData: applicantapimodels.ApplicantData{Name: "Bob", Email: "bob@example.com", JobTitle: "Go Developer"},
				Status:        models.ApplicantStatusReviewed,
			},
		}
		buf, err := Instance.ExportApplicantList(list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		require.Equal(t, []string{applicantSheet}, f.GetSheetList())

		rows, err := f.GetRows(applicantSheet)
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, applicantHeaders, rows[0])
		require.Equal(t, "Ann", rows[1][0])
		require.Equal(t, "Pending", rows[1][4])
		require.Equal(t, "2024-03-05", rows[1][5])
		require.Equal(t, "Reviewed", rows[2][4])

		pending, err := f.GetCellStyle(applicantSheet, "E2")
		require.Nil(t, err)
		reviewed, err := f.GetCellStyle(applicantSheet, "E3")
		require.Nil(t, err)
		plain, err := f.GetCellStyle(applicantSheet, "A2")
		require.Nil(t, err)
		require.NotEqual(t, pending, reviewed)
		require.NotEqual(t, plain, pending)

		panes, err := f.GetPanes(applicantSheet)
		require.Nil(t, err)
		require.True(t, panes.Freeze)
		require.Equal(t, 1, panes.YSplit)

		tables, err := f.GetTables(applicantSheet)
		require.Nil(t, err)
		require.Len(t, tables, 1)
		require.Equal(t, "A1:G3", tables[0].Range)
	})

	t.Run(`empty list keeps the header`, func(t *testing.T) {
		buf, err := Instance.ExportApplicantList(nil)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(applicantSheet)
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}

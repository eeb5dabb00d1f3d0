package dashboardapimodels

type Stats struct {
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
	Pending           int64 `json:"pending"`
	Reviewed          int64 `json:"reviewed"`
	Rejected          int64 `json:"rejected"`
}

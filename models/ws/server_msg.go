package wsmodels

type EventCode string

const (
	JobCreated             EventCode = "job_created"
	JobUpdated             EventCode = "job_updated"
	JobDeleted             EventCode = "job_deleted"
	ApplicantCreated       EventCode = "applicant_created"
	ApplicantStatusChanged EventCode = "applicant_status_changed"
	ApplicantDeleted       EventCode = "applicant_deleted"
	ProfileUpdated         EventCode = "profile_updated"
)

type ServerMessage struct {
	ToUserID string    `json:"-"`
	Time     string    `json:"time"`      // event time, RFC3339
	Code     EventCode `json:"code"`      // event code
	EntityID string    `json:"entity_id"` // id of the changed record
	Msg      string    `json:"msg"`       // human readable text
}

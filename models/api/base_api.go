package apimodels

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Message string      `json:"message,omitempty"` // error message
	Data    interface{} `json:"data,omitempty"`    // payload
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` // total rows matching the filter
}

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

// MaxPageLimit caps the rows of one page.
const MaxPageLimit = 500

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // rows per page
	Page  int `json:"page" query:"page"`   // page number, 1-based
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 50
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: StatusSuccess,
			Data:   data,
		},
		RowCount: rowCount,
	}
}

// UploadedFile is a file received in a multipart request.
type UploadedFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

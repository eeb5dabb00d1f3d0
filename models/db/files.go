package dbmodels

type FileStorage struct {
	BaseModel
	OwnerID     string   `gorm:"type:varchar(36);index"` // user or applicant the file belongs to
	Name        string   `gorm:"type:varchar(255)"`
	Type        FileType `gorm:"type:varchar(50)"`
	ContentType string   `gorm:"type:varchar(255)"`
	Size        int64
}

type FileType string

const (
	ApplicantResume  FileType = "applicant_resume"
	UserProfilePhoto FileType = "user_profile_photo"
)

type UploadFileInfo struct {
	OwnerID     string
	FileName    string
	FileType    FileType
	ContentType string
}

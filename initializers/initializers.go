package initializers

import (
	"smartjob-backend/config"
	"smartjob-backend/fiberlog"
	applicanthandler "smartjob-backend/lib/applicant"
	dashboardhandler "smartjob-backend/lib/dashboard"
	xlsexport "smartjob-backend/lib/export/xls"
	filestorage "smartjob-backend/lib/file-storage"
	jobhandler "smartjob-backend/lib/job"
	profilehandler "smartjob-backend/lib/profile"
	userhandler "smartjob-backend/lib/user"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices order matters: handlers capture the clients created before them.
func InitAllServices() {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	userhandler.NewHandler()
	jobhandler.NewHandler()
	applicanthandler.NewHandler()
	profilehandler.NewHandler()
	dashboardhandler.NewHandler()
}

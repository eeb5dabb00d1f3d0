package initializers

import (
	"smartjob-backend/config"
	"smartjob-backend/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(db.ConnConfig{
		Host:      conf.Host,
		Port:      conf.Port,
		Database:  conf.Name,
		User:      conf.User,
		Password:  conf.Password,
		DebugMode: *conf.DebugMode,
		Migrate:   *conf.MigrateOnStart,
		MaxConns:  conf.MaxConns,
	})
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}

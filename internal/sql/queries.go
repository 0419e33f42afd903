package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/load_preferences.sql
var LoadPreferences string

//go:embed queries/save_preferences.sql
var SavePreferences string

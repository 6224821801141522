package service

// ServiceConfig carries the business level switches the services need.
type ServiceConfig struct {
	User UserConfig
}

type UserConfig struct {
	RegisterIsEnable bool
}

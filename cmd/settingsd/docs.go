package main

// General API documentation for swaggo. Run the swag CLI to generate docs.
//
// @title           settingsd API
// @version         1.0
// @description     HTTP API for extension settings and active-model management.
//
// @contact.name   settingsd maintainers
// @contact.url    https://github.com/your-org/settingsd
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http

// Package api provides the REST API of ChainCache.
// @title ChainCache API
// @version 1.0
// @description REST API for the ChainCache eth_getLogs cache: coverage, request plans and cached logs
// @contact.name API Support
// @contact.url https://github.com/goran-ethernal/ChainCache
// @license.name Apache 2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @basePath /api/v1
// @schemes http https
package api

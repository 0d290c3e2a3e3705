// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml file. It provides
// type-safe access to the listening port, log level, CORS origins, and
// metrics settings while keeping configuration details out of the handlers.
package config

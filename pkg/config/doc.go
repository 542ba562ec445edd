// Package config loads application settings from environment variables and
// optional .env files into tagged structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Settings struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	    Env       string `env:"ENV" envDefault:"development"`
//	}
//
//	var s Settings
//	if err := config.Load(&s,
//	    config.WithPrefix("RECORDCHECK_"),
//	    config.WithEnvFiles(".env"),
//	); err != nil {
//	    return err
//	}
//
// Process variables always win over .env values and missing .env files are
// not an error. WithEnvironment replaces the process environment, which keeps
// tests independent of the machine they run on.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct
//   - ErrLoadingEnvFile: a .env file exists but is malformed or unreadable
//   - ErrNilPointer: Load was given a nil pointer
//
// MustLoad and MustLoadEnv panic instead of returning an error.
package config

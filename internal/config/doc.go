// Package config loads runtime settings from the environment and an optional
// user file at ~/.create-rolldown/config.yaml. Prefixed keys such as
// CREATE_ROLLDOWN_TEMPLATES_DIR are read alongside the unprefixed variables
// the npm ecosystem sets (CI, npm_config_user_agent).
package config

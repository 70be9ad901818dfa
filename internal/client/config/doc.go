// Package config loads runtime configuration for the todo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. The file is YAML;
//     JSON works as well since it is valid YAML.
//  3. Command-line flags bound by BindFlags, which override earlier values.
//
// # File schema
//
//	data_dir: ~/todo
//	storage: sqlite        # json (default) or sqlite
//	users_file: users.json
//	tasks_file: tasks.json
//	session_file: session.json
//	database_file: todo.db
//	bcrypt_cost: 12
//	log_level: info
//
// Note: This package does not read environment variables directly.
package config

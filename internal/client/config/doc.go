// Package config loads runtime configuration for the gophauth client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file passed with --config.
//  3. Command-line flags registered by the cli package, which override
//     earlier values when set explicitly.
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:1163",
//	  "data_dir": "/home/me/.config/gophauth",
//	  "request_timeout": "10s"
//	}
package config

package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g. ":1163")
//	-g string     gRPC health bind address, "" disables
//	-d string     database DSN
//	-s string     token signing secret
//	-t duration   token validity (e.g. "24h")
//	-o string     comma-separated allowed CORS origins
//	-e string     environment: development | production
//	-l string     log level
//
// Only these flags are looked at, so -c/-config and unknown flags do not
// cause errors here.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-o", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed origins (comma-separated)")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment (development|production)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.AllowedOrigins = splitOrigins(*origins)
	return nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

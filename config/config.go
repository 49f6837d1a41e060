package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS    = ""          // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""          // MySQL will be used if this is set
	SQLITE_FILE    = "garden.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"
	TEMPLATES_GLOB = "templates/*.tmpl"
	DEBUG_MODE     = true
	// Tags created on start-up if missing, so the selection form is never empty on a fresh install
	DEFAULT_TAGS = []string{"Sun", "Shade", "Perennial", "Annual", "Edible"}
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TEMPLATES_GLOB", &TEMPLATES_GLOB)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvList("DEFAULT_TAGS", &DEFAULT_TAGS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

// readEnvList splits a comma separated value, "-" clears the list
func readEnvList(name string, value *[]string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if v == "-" {
		*value = []string{}
		return
	}
	result := []string{}
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	*value = result
}

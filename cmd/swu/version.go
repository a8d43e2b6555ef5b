package main

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// Set at build time through -ldflags.
var (
	version      = "dev"
	buildTimeStr string
)

var sha1Regex = regexp.MustCompile("^[a-f0-9]{40}$")

func shortVersion() string {
	if sha1Regex.MatchString(version) {
		return version[:7]
	}
	return version
}

func buildInformation() string {
	var b strings.Builder

	fmt.Fprintf(&b, "swu version %s\n", shortVersion())

	goVersion := strings.TrimPrefix(runtime.Version(), "go")
	if buildTime, err := time.Parse("2006-01-02T15:04:05", buildTimeStr); err == nil {
		fmt.Fprintf(&b, "Built with Go version %s on %s\n", goVersion, buildTime.Format(time.RFC3339))
	} else {
		fmt.Fprintf(&b, "Built with Go version %s\n", goVersion)
	}

	return b.String()
}

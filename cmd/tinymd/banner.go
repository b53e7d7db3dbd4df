// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
)

const (
	appName     = "tinymd"
	description = "a tiny markdown compiler"
	authors     = "Mesh Intelligence Inc."
	homepage    = "https://github.com/pdiddy/tinymd"
)

func title() string {
	return fmt.Sprintf("%s (v%s), %s", appName, version, description)
}

func printShortBanner(w io.Writer) {
	fmt.Fprintln(w, title())
}

func printLongBanner(w io.Writer) {
	printShortBanner(w)
	fmt.Fprintf(w, "Written by: %s\n", authors)
	fmt.Fprintf(w, "Homepage: %s\n", homepage)
	fmt.Fprintf(w, "Usage: %s <somefile>.md\n", appName)
}

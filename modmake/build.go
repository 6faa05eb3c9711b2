package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	bufopsVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	bufops := NewAppBuild("bufops", "cmd/bufops", bufopsVersion)
	bufops.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", bufopsVersion).
			CgoEnabled(false)
	})
	bufops.Variant("windows", "amd64")
	bufops.Variant("linux", "amd64")
	bufops.Variant("linux", "arm64")
	bufops.Variant("darwin", "amd64")
	bufops.Variant("darwin", "arm64")
	b.ImportApp(bufops)

	b.Execute()
}

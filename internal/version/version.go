//
// mateguess - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2020-2026 mateguess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package version carries build-time identifying strings. ldflags
// normally overwrite these at `go build` time; the default values below
// are what a plain `go run` or `go test` sees.
package version

var (
	// programName is the engine's UCI-reported name.
	programName = "mateguess"
	// versionNumber is overwritten via -ldflags "-X .../version.versionNumber=..."
	versionNumber = "0.0.0-dev"
	// gitBranch and gitHash are likewise overwritten by the release build.
	gitBranch = "unknown"
	gitHash   = "unknown"
	buildDate = "unknown"
)

// Version returns the short version string reported to UCI clients
// and printed at startup, e.g. "0.0.0-dev (unknown@unknown)" with the
// default values.
func Version() string {
	return versionNumber + " (" + gitBranch + "@" + gitHash + ")"
}

// ProgramName returns the engine's display name.
func ProgramName() string {
	return programName
}

// Details returns a multi-line block with the full build provenance.
func Details() string {
	return programName + " " + versionNumber + "\n" +
		"branch:  " + gitBranch + "\n" +
		"commit:  " + gitHash + "\n" +
		"built:   " + buildDate + "\n"
}

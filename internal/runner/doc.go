// Package runner executes external tools (node, npm) on behalf of a scaffold
// run. ExecRunner shells out with a fixed timeout ceiling, streaming output to
// the configured writers while capturing it; Recorder is an in-memory double
// that records commands and replays scripted results.
package runner
